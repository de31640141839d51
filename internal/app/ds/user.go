package ds

// 3. Таблица пользователей (клиники и сотрудники)
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Login    string `gorm:"type:varchar(50);unique;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(100)"`
	FullName string `gorm:"type:varchar(100)"`
	Role     int    `gorm:"not null;default:0"` // 0 - clinic, 1 - staff, 2 - admin
}
