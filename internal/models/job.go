package models

type Job struct {
	BaseModel
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Requirements string `json:"requirements"`
	PostedBy     string `json:"postedBy" gorm:"not null;index"`
	IsClosed     bool   `json:"isClosed" gorm:"default:false"`
}
