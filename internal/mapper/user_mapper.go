package mapper

import (
	"brand-chatbot-be/internal/entity"
	"brand-chatbot-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                 u.Id,
		Email:              u.Email,
		Name:               u.Name,
		Phone:              u.Phone,
		BusinessName:       u.BusinessName,
		Website:            u.Website,
		Location:           u.Location,
		IpAddress:          u.IpAddress,
		City:               u.City,
		Region:             u.Region,
		Country:            u.Country,
		TotalConversations: u.TotalConversations,
		FirstSeen:          u.FirstSeen,
		LastSeen:           u.LastSeen,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                 u.Id,
		Email:              u.Email,
		Name:               u.Name,
		Phone:              u.Phone,
		BusinessName:       u.BusinessName,
		Website:            u.Website,
		Location:           u.Location,
		IpAddress:          u.IpAddress,
		City:               u.City,
		Region:             u.Region,
		Country:            u.Country,
		TotalConversations: u.TotalConversations,
		FirstSeen:          u.FirstSeen,
		LastSeen:           u.LastSeen,
	}
}
