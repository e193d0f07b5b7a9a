package main

import (
	"log"

	"yatube/internal/config"
	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/mysql"
	"yatube/internal/repository/redis"
	"yatube/internal/router"
)

func main() {
	cfg := config.Load()
	pkg.Secret = []byte(cfg.JWTSecret)
	pkg.SessionTTL = cfg.JWTTTL

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.Question{},
		&model.Choice{},
	); err != nil {
		panic(err)
	}

	r := router.InitRouter(mysql.DB, cfg)
	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
