package models

// Job is owned by the job directory; this service only reads it.
type Job struct {
	BaseModel
	ClientID    string    `gorm:"type:varchar(36);not null;index" json:"client_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Budget      float64   `json:"budget"`
	Status      JobStatus `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
}

func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
