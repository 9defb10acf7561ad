package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gym-backend/models"
	"gym-backend/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "gym_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Salle{},
		&models.Client{},
		&models.Reservation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase provisions the fixed admin account and a small sample data
// set when the corresponding tables are empty.
func SeedDatabase() {
	seedAdmin()
	seedSalles()
	seedClients()
	seedReservations()
}

func seedAdmin() {
	var count int64
	DB.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash default admin password: %v", err)
		return
	}
	admin := models.Admin{
		FullName: "Administrateur",
		Username: envOrDefault("ADMIN_USERNAME", "admin"),
		Password: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to create default admin: %v", err)
		return
	}
	log.Println("Default admin seeded")
}

func equipmentJSON(items ...string) datatypes.JSON {
	out := "["
	for i, it := range items {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%q", it)
	}
	out += "]"
	return datatypes.JSON(out)
}

func seedSalles() {
	var count int64
	DB.Model(&models.Salle{}).Count(&count)
	if count > 0 {
		return
	}

	salles := []models.Salle{
		{
			Name:        "Salle Musculation 1",
			Type:        "Musculation",
			Capacity:    20,
			HourlyPrice: 25000,
			Description: "Salle équipée de machines de musculation modernes",
			Equipment:   equipmentJSON("Haltères", "Barres", "Machines guidées", "Bancs"),
			Available:   true,
		},
		{
			Name:        "Studio Yoga",
			Type:        "Yoga",
			Capacity:    15,
			HourlyPrice: 20000,
			Description: "Studio calme et lumineux pour la pratique du yoga",
			Equipment:   equipmentJSON("Tapis", "Blocs", "Sangles", "Miroirs"),
			Available:   true,
		},
		{
			Name:        "Salle Cardio",
			Type:        "Cardio",
			Capacity:    25,
			HourlyPrice: 22000,
			Description: "Espace cardio avec équipements dernière génération",
			Equipment:   equipmentJSON("Tapis de course", "Vélos", "Elliptiques", "Rameurs"),
			Available:   true,
		},
		{
			Name:        "Dojo Arts Martiaux",
			Type:        "Arts Martiaux",
			Capacity:    30,
			HourlyPrice: 30000,
			Description: "Dojo traditionnel pour la pratique des arts martiaux",
			Equipment:   equipmentJSON("Tatamis", "Sacs de frappe", "Miroirs"),
			Available:   true,
		},
		{
			Name:        "Studio Danse",
			Type:        "Danse",
			Capacity:    18,
			HourlyPrice: 28000,
			Description: "Studio de danse avec parquet et sonorisation",
			Equipment:   equipmentJSON("Barres", "Miroirs", "Système audio", "Parquet"),
			Available:   true,
		},
	}
	if err := DB.Create(&salles).Error; err != nil {
		log.Printf("warning: failed to seed salles: %v", err)
		return
	}
	log.Println("Salles seeded")
}

func seedClients() {
	var count int64
	DB.Model(&models.Client{}).Count(&count)
	if count > 0 {
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	clients := []models.Client{
		{FirstName: "Jean", LastName: "Dupont", Email: "jean.dupont@email.com",
			Phone: "0123456789", Address: "123 Rue de la Paix, Paris",
			Subscription: models.SubscriptionAnnual, RegisteredAt: today},
		{FirstName: "Marie", LastName: "Martin", Email: "marie.martin@email.com",
			Phone: "0234567890", Address: "456 Avenue des Sports, Lyon",
			Subscription: models.SubscriptionMonthly, RegisteredAt: today},
		{FirstName: "Pierre", LastName: "Bernard", Email: "pierre.bernard@email.com",
			Phone: "0345678901", Address: "789 Boulevard du Fitness, Marseille",
			Subscription: models.SubscriptionQuarterly, RegisteredAt: today},
		{FirstName: "Sophie", LastName: "Moreau", Email: "sophie.moreau@email.com",
			Phone: "0456789012", Address: "321 Rue du Bien-être, Toulouse",
			Subscription: models.SubscriptionOccasional, RegisteredAt: today},
	}
	if err := DB.Create(&clients).Error; err != nil {
		log.Printf("warning: failed to seed clients: %v", err)
		return
	}
	log.Println("Clients seeded")
}

func seedReservations() {
	var count int64
	DB.Model(&models.Reservation{}).Count(&count)
	if count > 0 {
		return
	}

	var client1, client2 models.Client
	if err := DB.Where("email = ?", "jean.dupont@email.com").First(&client1).Error; err != nil {
		return
	}
	if err := DB.Where("email = ?", "marie.martin@email.com").First(&client2).Error; err != nil {
		return
	}
	var salle1, salle2 models.Salle
	if err := DB.Where("name = ?", "Salle Musculation 1").First(&salle1).Error; err != nil {
		return
	}
	if err := DB.Where("name = ?", "Studio Yoga").First(&salle2).Error; err != nil {
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	at := func(days, hour, minute int) time.Time {
		d := tomorrow.AddDate(0, 0, days-1)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	}

	price1 := services.CalculatePrice(salle1.HourlyPrice, at(1, 10, 0), at(1, 12, 0))
	price2 := services.CalculatePrice(salle2.HourlyPrice, at(2, 18, 0), at(2, 19, 30))

	reservations := []models.Reservation{
		{
			ClientID: client1.ID, SalleID: salle1.ID,
			StartTime: at(1, 10, 0), EndTime: at(1, 12, 0),
			Status: models.StatusConfirmed, TotalPrice: &price1,
			Remarks: "Séance de musculation matinale",
		},
		{
			ClientID: client2.ID, SalleID: salle2.ID,
			StartTime: at(2, 18, 0), EndTime: at(2, 19, 30),
			Status: models.StatusPending, TotalPrice: &price2,
			Remarks: "Cours de yoga du soir",
		},
	}
	if err := DB.Create(&reservations).Error; err != nil {
		log.Printf("warning: failed to seed reservations: %v", err)
		return
	}
	log.Println("Reservations seeded")
}
