package model

// GenderModel mirrors the 'genders' lookup table. Rows are seeded by
// migrations and never written at runtime.
type GenderModel struct {
	Code int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (GenderModel) TableName() string {
	return "genders"
}

// AgeGroupModel mirrors the 'age_groups' lookup table.
type AgeGroupModel struct {
	Code int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AgeGroupModel) TableName() string {
	return "age_groups"
}

// OccupationModel mirrors the 'occupations' lookup table.
type OccupationModel struct {
	Code int    `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OccupationModel) TableName() string {
	return "occupations"
}
