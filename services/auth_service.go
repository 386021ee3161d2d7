package services

import (
	"errors"
	"strings"

	"github.com/Nikhilguptaklu/grocery-qm-sub000/configs"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/entity"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	DB  *gorm.DB
	Cfg *configs.Config
}

func NewAuthService(db *gorm.DB, cfg *configs.Config) *AuthService {
	return &AuthService{DB: db, Cfg: cfg}
}

type RegisterIn struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Register(in *RegisterIn) (*AuthOut, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := s.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Role:        "customer",
	}
	if err := s.DB.Create(&u).Error; err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: &u}, nil
}

func (s *AuthService) Login(in *LoginIn) (*AuthOut, error) {
	var u entity.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(in.Email))).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.Cfg.JWTSecret, s.Cfg.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthOut{Token: token, User: &u}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	var u entity.User
	if err := s.DB.First(&u, userID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
