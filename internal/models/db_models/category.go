package db_models

// Category groups the questionnaire into sections. Soft delete is the
// Active flag: inactive categories stay visible to admins and keep
// historical profile responses valid, so gorm's DeletedAt is not used.
// Name uniqueness among active categories is enforced by the service,
// not a unique index, so a name becomes reusable after soft delete.
type Category struct {
	BaseModel
	Name         string `gorm:"size:100;not null"`
	DisplayOrder int    `gorm:"column:display_order;not null"`
	Active       bool   `gorm:"not null;default:true"`
}
