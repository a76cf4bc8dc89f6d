package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/database"
	"github.com/studytrack/studytrack-backend/internal/logger"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)

	fmt.Println("=== Seeding 30 Students ===")

	names := []string{
		"Ahmet Yılmaz", "Ayşe Demir", "Mehmet Kaya", "Fatma Çelik", "Mustafa Şahin",
		"Emine Yıldız", "Ali Aydın", "Zeynep Arslan", "Hüseyin Doğan", "Hatice Kılıç",
		"İbrahim Aslan", "Elif Çetin", "Osman Kara", "Meryem Koç", "Yusuf Kurt",
		"Şerife Özkan", "Ramazan Şimşek", "Havva Polat", "Süleyman Özdemir", "Zehra Erdoğan",
		"Halil Yavuz", "Sultan Aksoy", "İsmail Güneş", "Hanife Bozkurt", "Ömer Taş",
		"Melek Acar", "Recep Avcı", "Esma Güler", "Selim Turan", "Rabia Duman",
	}

	seeded := 0
	duplicates := 0
	for i, fullName := range names {
		parts := strings.SplitN(fullName, " ", 2)

		level := model.LevelCozmez
		if i%3 == 0 {
			level = model.LevelKidemli
		}

		student := &model.Student{
			StudentNumber: fmt.Sprintf("ST%04d", i+1),
			FirstName:     parts[0],
			LastName:      parts[1],
			Level:         level,
		}

		inserted, err := studentRepo.CreateIgnoreDuplicate(ctx, student)
		if err != nil {
			log.Fatal().Err(err).Str("student_number", student.StudentNumber).Msg("Failed to seed student")
		}
		if inserted {
			seeded++
		} else {
			duplicates++
		}
	}

	fmt.Printf("Done. Seeded %d students (%d already existed).\n", seeded, duplicates)
}
