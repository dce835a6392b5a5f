package health

// RecordCounter reports how many records are held in memory.
type RecordCounter interface {
	Count() int
}

// Status is the health payload.
type Status struct {
	OK      bool `json:"ok"`
	Resumes int  `json:"resumes"`
}

// Service encapsulates health-related checks.
type Service struct {
	records RecordCounter
}

// NewService constructs a new health service. records may be nil.
func NewService(records RecordCounter) *Service {
	return &Service{records: records}
}

// Status returns a simple health payload.
func (s *Service) Status() Status {
	st := Status{OK: true}
	if s != nil && s.records != nil {
		st.Resumes = s.records.Count()
	}
	return st
}
