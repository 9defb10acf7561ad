package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gym-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

// isDuplicateKey recognizes a unique-constraint violation from MySQL (error
// 1062) or from the sqlite store used in tests.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "unique constraint") || strings.Contains(lc, "duplicate")
}

func (s *ClientService) validate(client *models.Client) error {
	if client.FirstName == "" || client.LastName == "" {
		return &ValidationError{Message: "client first and last name are required"}
	}
	if client.Email == "" {
		return &ValidationError{Message: "client email is required"}
	}
	if client.Subscription != "" && !models.ValidSubscription(client.Subscription) {
		return &ValidationError{Message: fmt.Sprintf("unknown subscription %q", client.Subscription)}
	}
	return nil
}

func (s *ClientService) Create(client *models.Client) error {
	if err := s.validate(client); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Client{}).Where("email = ?", client.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check client email: %w", err)
	}
	if count > 0 {
		return &DuplicateError{Email: client.Email}
	}

	if client.RegisteredAt.IsZero() {
		now := time.Now()
		client.RegisteredAt = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if client.Subscription == "" {
		client.Subscription = models.SubscriptionOccasional
	}

	if err := s.DB.Create(client).Error; err != nil {
		// Unique index is the ultimate authority under concurrent creates.
		if isDuplicateKey(err) {
			return &DuplicateError{Email: client.Email}
		}
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: id}
		}
		return nil, fmt.Errorf("failed to retrieve client %d: %w", id, err)
	}
	return &client, nil
}

func (s *ClientService) GetByEmail(email string) (*models.Client, error) {
	var client models.Client
	if err := s.DB.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: 0}
		}
		return nil, fmt.Errorf("failed to retrieve client by email: %w", err)
	}
	return &client, nil
}

func (s *ClientService) GetAll() ([]models.Client, error) {
	var clients []models.Client
	if err := s.DB.Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Update(id uint, details *models.Client) (*models.Client, error) {
	if err := s.validate(details); err != nil {
		return nil, err
	}

	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: id}
		}
		return nil, fmt.Errorf("failed to load client %d: %w", id, err)
	}

	if client.Email != details.Email {
		var count int64
		if err := s.DB.Model(&models.Client{}).Where("email = ?", details.Email).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check client email: %w", err)
		}
		if count > 0 {
			return nil, &DuplicateError{Email: details.Email}
		}
	}

	updates := map[string]interface{}{
		"first_name":   details.FirstName,
		"last_name":    details.LastName,
		"email":        details.Email,
		"phone":        details.Phone,
		"address":      details.Address,
		"subscription": details.Subscription,
	}
	if err := s.DB.Model(&client).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &DuplicateError{Email: details.Email}
		}
		return nil, fmt.Errorf("failed to update client %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete removes a client and cascades to its reservations: the client owns
// its reservation records.
func (s *ClientService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "client", ID: id}
			}
			return fmt.Errorf("failed to load client %d: %w", id, err)
		}

		if err := tx.Where("client_id = ?", id).Delete(&models.Reservation{}).Error; err != nil {
			return fmt.Errorf("failed to delete reservations of client %d: %w", id, err)
		}
		if err := tx.Delete(&client).Error; err != nil {
			return fmt.Errorf("failed to delete client %d: %w", id, err)
		}
		return nil
	})
}

// Search matches the term case-insensitively against first or last name.
func (s *ClientService) Search(term string) ([]models.Client, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var clients []models.Client
	err := s.DB.
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like).
		Order("id").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) GetBySubscription(subscription string) ([]models.Client, error) {
	if !models.ValidSubscription(subscription) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown subscription %q", subscription)}
	}
	var clients []models.Client
	if err := s.DB.Where("subscription = ?", subscription).Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve clients by subscription: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}
