package main

import (
	"log"
	"time"

	"go-storemap-api/internal/config"
	"go-storemap-api/internal/model"
	"go-storemap-api/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the catalog with the first-party dataset: the product line, the
// retail locations carrying it, and the current stock counts. Safe to
// re-run; existing rows are updated in place.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Setup Database
	db := database.Connect(cfg.DSN())
	db.AutoMigrate(&model.Product{}, &model.Location{}, &model.InventoryRecord{}, &model.User{})

	// 3. Seed
	log.Println("Seeding products...")
	for i := range products {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", products[i].ID, err)
		}
	}
	log.Printf("Seeded %d products", len(products))

	log.Println("Seeding locations...")
	for i := range locations {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&locations[i]).Error; err != nil {
			log.Fatalf("Failed to seed location %s: %v", locations[i].ID, err)
		}
	}
	log.Printf("Seeded %d locations", len(locations))

	log.Println("Seeding inventory...")
	now := time.Now()
	for _, item := range stock {
		record := model.InventoryRecord{
			ID:          model.InventoryKey(item.locationID, item.productID),
			LocationID:  item.locationID,
			ProductID:   item.productID,
			Stock:       item.stock,
			LastUpdated: now,
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error; err != nil {
			log.Fatalf("Failed to seed inventory %s: %v", record.ID, err)
		}
	}
	log.Printf("Seeded %d inventory records", len(stock))

	seedAdmin(db)

	log.Println("Seeding complete")
}

func seedAdmin(db *gorm.DB) {
	var existing model.User
	if err := db.Where("email = ?", "admin@example.com").First(&existing).Error; err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Admin user created: admin@example.com / admin123")
}

var products = []model.Product{
	// kurashi series
	{ID: "kasane-no-partition", Name: "kasane（仕切なし）", Price: 2750, Category: "kurashi", Description: "積み重ねて使える杉のトレイ。デスクの上をスッキリ整理"},
	{ID: "kasane-with-partition", Name: "kasane（仕切あり）", Price: 3300, Category: "kurashi", Description: "積み重ねて使える杉のトレイ。デスクの上をスッキリ整理"},
	{ID: "kobaco", Name: "kobaco", Price: 3300, Category: "kurashi", Description: "小さな日用品の定位置に。職人技が光る精密なスライド蓋"},
	{ID: "tateru", Name: "tateru", Price: 6600, Category: "kurashi", Description: "杉のスマホスタンド。毎日使うから、本格派の一品を。"},
	{ID: "yorozu", Name: "yorozu", Price: 11000, Category: "kurashi", Description: "杉のラック。雑誌からバッグまで、なんでも入ります"},

	// kokoro series
	{ID: "inori-horse", Name: "inori（午年バージョン）", Price: 2200, Category: "kokoro", Description: "暮らしの中に祈りの場所を。午年の蹄鉄で幸運を"},
	{ID: "pochi-medium-majime", Name: "pochi（中・まじめ）", Price: 6600, Category: "kokoro", Description: "伝統とポップの出会いで生まれた、杉のわんこ"},
	{ID: "mokumoku", Name: "mokumoku", Price: 1650, Category: "kokoro", Description: "杉の香りを楽しむ小さなオブジェ"},
	{ID: "kunkun", Name: "kunkun", Price: 1650, Category: "kokoro", Description: "ほのかに香る杉のわんこ"},
	{ID: "sugitags", Name: "sugitags", Price: 880, Category: "kurashi", Description: "杉の木のネームタグ"},
	{ID: "hashikko", Name: "hashikko", Price: 1100, Category: "kurashi", Description: "端材から生まれた箸置き"},
}

var locations = []model.Location{
	{
		ID: "miho-fureai-plaza", Name: "みほふれ愛プラザ",
		Address: "茨城県稲敷郡美浦村受領1546-1",
		Latitude: 36.0046, Longitude: 140.3023,
		Hours: "9:00-18:00", ClosedDays: "月曜日",
		Type: model.TypeRoadsideStation,
	},
	{
		ID: "kawachi-yumeraku", Name: "かわち夢楽",
		Address: "茨城県稲敷郡河内町源清田1183",
		Latitude: 35.8825, Longitude: 140.2447,
		Hours: "9:00-17:00", ClosedDays: "水曜日",
		Type: model.TypeRoadsideStation,
	},
	{
		ID: "hakko-no-sato-kouzaki", Name: "発酵の里こうざき",
		Address: "千葉県香取郡神崎町松崎855",
		Latitude: 35.9139, Longitude: 140.4044,
		Hours: "9:00-18:00", ClosedDays: "年中無休",
		Type: model.TypeRoadsideStation,
	},
	{
		ID: "suwa-daijin", Name: "諏訪大神",
		Address: "千葉県香取郡東庄町笹川い580",
		Latitude: 35.8352, Longitude: 140.6657,
		Hours: "参拝自由", ClosedDays: "",
		Type: model.TypeShrine,
	},
	{
		ID: "tada-asahimori-inari", Name: "多田朝日森稲荷神社",
		Address: "千葉県香取市多田2441",
		Latitude: 35.8511, Longitude: 140.5569,
		Hours: "9:00-16:00", ClosedDays: "",
		Type: model.TypeShrine,
	},
}

var stock = []struct {
	locationID string
	productID  string
	stock      int
}{
	{"miho-fureai-plaza", "inori-horse", 2},
	{"miho-fureai-plaza", "sugitags", 10},
	{"kawachi-yumeraku", "mokumoku", 15},
	{"kawachi-yumeraku", "kunkun", 12},
	{"hakko-no-sato-kouzaki", "hashikko", 10},
	{"suwa-daijin", "inori-horse", 5},
	{"tada-asahimori-inari", "inori-horse", 3},
}
