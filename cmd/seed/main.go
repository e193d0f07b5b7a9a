// Seed creates the out-of-band content: groups and poll questions with
// their choices. Safe to re-run, existing rows are left alone.
package main

import (
	"errors"
	"log"
	"time"

	"yatube/internal/config"
	"yatube/internal/model"
	"yatube/internal/repository/mysql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var groups = []model.Group{
	{Title: "Котики", Slug: "cats", Description: "Записи про котиков."},
	{Title: "Путешествия", Slug: "travel", Description: "Куда поехать и что посмотреть."},
	{Title: "Книги", Slug: "books", Description: "Что читаем и что советуем."},
}

var questions = []model.Question{
	{
		Text:    "Какая рубрика вам интереснее?",
		PubDate: time.Now(),
		Choices: []model.Choice{
			{Text: "Котики"},
			{Text: "Путешествия"},
			{Text: "Книги"},
		},
	},
}

func main() {
	cfg := config.Load()
	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatal(err)
	}
	db := mysql.DB

	if err := db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.Question{},
		&model.Choice{},
	); err != nil {
		log.Fatal(err)
	}

	for i := range groups {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).Create(&groups[i]).Error
		if err != nil {
			log.Fatal(err)
		}
	}

	for i := range questions {
		q := &questions[i]
		var existing model.Question
		err := db.Where("text = ?", q.Text).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal(err)
		}
		if err := db.Create(q).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("seed done")
}
