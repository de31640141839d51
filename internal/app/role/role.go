package role

// Роли пользователей
type Role int

const (
	Clinic Role = iota // обычный пользователь клиники
	Staff              // сотрудник типографии
	Admin              // администратор
)
