// Package store implements the persistence repositories on postgres.
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to postgres and migrates the schema. TranslateError lets
// repositories match gorm.ErrDuplicatedKey instead of parsing pg error codes.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&userModel{},
		&scheduleModel{},
		&planItemModel{},
		&subtopicModel{},
		&quizModel{},
		&questionModel{},
		&optionModel{},
		&quizAttemptModel{},
		&attemptAnswerModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
