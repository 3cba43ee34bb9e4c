package account

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (Account, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(a Account) (Account, error) {
	if _, err := s.repo.GetByEmail(a.Email); err == nil {
		return Account{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Account{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	a.Password = string(hashed)
	return s.repo.Create(a)
}

func (s *Service) Authenticate(email, password string) (Account, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Account{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Account{}, ErrInvalidCredentials
	}

	return a, nil
}
