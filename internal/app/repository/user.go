package repository

import (
	"backend/internal/app/ds"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(login, password, fullName, email string, userRole int) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: password,
		FullName: fullName,
		Email:    email,
		Role:     userRole,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(id uint, fullName, password *string) error {
	updates := map[string]interface{}{}
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if password != nil {
		updates["password"] = *password
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&ds.User{}).Where("id = ?", id).Updates(updates).Error
}
