package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ocean/internal/config"
	"ocean/internal/model"
	"ocean/internal/pkg"
	"ocean/internal/repository/mysql"
	"ocean/internal/repository/redis"
	"ocean/internal/router"
	"ocean/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "ocean.yml"
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	db, err := mysql.InitDB(cfg.MySQL.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Topic{},
		&model.Mandela{},
		&model.MandelaCategory{},
		&model.Comment{},
		&model.Mark{},
		&model.Vote{},
		&model.ActivityOutbox{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	var cache *redis.ProfileCache
	if cfg.Redis.Addr != "" {
		client, err := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		cache = redis.NewProfileCache(client)
	}

	sender := service.LogSender(log)
	if len(cfg.Kafka.Brokers) > 0 {
		producer := pkg.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(db, sender, log).Run(ctx)

	r := router.InitRouter(db, cache, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
