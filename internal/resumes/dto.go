package resumes

type saveResumeRequest struct {
	PersonalInfo map[string]any `json:"personalInfo" binding:"required"`
	Summary      *string        `json:"summary" binding:"required"`
	Experience   []any          `json:"experience" binding:"required"`
	Education    []any          `json:"education" binding:"required"`
	Skills       []any          `json:"skills" binding:"required"`
	Projects     []any          `json:"projects"`
}

func (r saveResumeRequest) toRecord() Record {
	return Record{
		PersonalInfo: r.PersonalInfo,
		Summary:      *r.Summary,
		Experience:   r.Experience,
		Education:    r.Education,
		Skills:       r.Skills,
		Projects:     r.Projects,
	}
}

type saveResumeResponse struct {
	Message  string `json:"message"`
	ResumeID string `json:"resume_id"`
	SavedAt  string `json:"saved_at"`
}

type listResumesResponse struct {
	Resumes []Summary `json:"resumes"`
}
