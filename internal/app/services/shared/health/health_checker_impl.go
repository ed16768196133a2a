package health

import (
	"context"
	"doccare-service/internal/app/contracts"
	"errors"

	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	errNotConfigured    = errors.New("dependency is not configured")
	errConnectionClosed = errors.New("connection is closed")
	errBucketMissing    = errors.New("bucket does not exist")
)

const (
	NameMongoDB  = "mongodb"
	NameRedis    = "redis"
	NameRabbitMQ = "rabbitmq"
	NameMinio    = "minio"
)

type mongoChecker struct {
	client *mongo.Client
}

func NewMongoChecker(client *mongo.Client) contracts.HealthChecker {
	return &mongoChecker{client: client}
}

func (c *mongoChecker) Name() string { return NameMongoDB }

func (c *mongoChecker) Check(ctx context.Context) error {
	if c.client == nil {
		return errNotConfigured
	}
	return c.client.Ping(ctx, readpref.Primary())
}

type redisChecker struct {
	repository contracts.RedisRepository
}

func NewRedisChecker(repository contracts.RedisRepository) contracts.HealthChecker {
	return &redisChecker{repository: repository}
}

func (c *redisChecker) Name() string { return NameRedis }

func (c *redisChecker) Check(ctx context.Context) error {
	if c.repository == nil {
		return errNotConfigured
	}
	return c.repository.Ping(ctx)
}

type rabbitMQChecker struct {
	conn *amqp091.Connection
}

func NewRabbitMQChecker(conn *amqp091.Connection) contracts.HealthChecker {
	return &rabbitMQChecker{conn: conn}
}

func (c *rabbitMQChecker) Name() string { return NameRabbitMQ }

func (c *rabbitMQChecker) Check(ctx context.Context) error {
	if c.conn == nil {
		return errNotConfigured
	}
	if c.conn.IsClosed() {
		return errConnectionClosed
	}
	return nil
}

type minioChecker struct {
	client     *minio.Client
	bucketName string
}

func NewMinioChecker(client *minio.Client, bucketName string) contracts.HealthChecker {
	return &minioChecker{client: client, bucketName: bucketName}
}

func (c *minioChecker) Name() string { return NameMinio }

func (c *minioChecker) Check(ctx context.Context) error {
	if c.client == nil {
		return errNotConfigured
	}
	exists, err := c.client.BucketExists(ctx, c.bucketName)
	if err != nil {
		return err
	}
	if !exists {
		return errBucketMissing
	}
	return nil
}
