package main

import (
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/drivers/database"
	"doccare-service/internal/app/drivers/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func newLogger() *logrus.Logger {
	return logger.NewLogrusLogger(config.NewDriverConfig(), config.NewInternalConfig())
}

func connectMongo() (*mongo.Client, string) {
	driverConfig := config.NewDriverConfig()
	return database.NewMongoDB(driverConfig), driverConfig.MongoDB.DbName
}

func connectRedis() *redis.Client {
	return database.NewRedisClient(config.NewDriverConfig())
}
