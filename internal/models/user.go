package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
	Bio          string   `json:"bio"`
	HourlyRate   *float64 `json:"hourly_rate,omitempty"`

	// Relations
	PortfolioItems []PortfolioItem         `gorm:"foreignKey:FreelancerID" json:"-"`
	Preferences    *NotificationPreference `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
