package main

import (
	"context"
	"log"
	"strconv"

	"loanlink/loan_marketplace/configs"
	"loanlink/loan_marketplace/internal/app/router"
	"loanlink/loan_marketplace/internal/pkg/db"
	"loanlink/loan_marketplace/internal/pkg/events"
	"loanlink/loan_marketplace/internal/pkg/gcs"
	"loanlink/loan_marketplace/internal/pkg/logger"
	"loanlink/loan_marketplace/internal/pkg/otel"
	"loanlink/loan_marketplace/internal/pkg/pubsub"
	"loanlink/loan_marketplace/internal/pkg/redis"
	"loanlink/loan_marketplace/internal/pkg/utils/worker"
)

func main() {

	// Load Environment Variables
	err := configs.LoadEnv()
	if err != nil {
		logger.Debug("Error loading .env file: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//setup otel collector
	_, err = otel.Setup(ctx, configs.SERVICE_NAME, configs.OTEL_URL)
	if err != nil {
		logger.Error(ctx, "Error setting up OTLP: %v", err)
	}

	// DB Connection. Server mode needs the database up front; serverless mode
	// defers the dial to the first request.
	var mdb *db.MongoDB
	if configs.DEPLOYMENT_MODE == configs.DeploymentModeServerless {
		mdb = db.NewLazyMongoDB()
	} else {
		if configs.DB_URI == "" {
			log.Fatal("DB_URI must be set when DEPLOYMENT_MODE is server")
		}
		var dbErr error
		mdb, dbErr = db.NewMongoDB()
		if dbErr != nil {
			log.Fatalf("Error connecting to MongoDB: %v", dbErr)
		}
		db.EnsureIndexes(mdb)
	}
	defer mdb.Close()

	kafkaProducer, err := events.NewKafkaProducer(configs.KAFKA_SERVER, configs.KAFKA_TOPIC)
	if err != nil {
		logger.Error(ctx, "failed to create Kafka Producer error: %v", err)
	} else {
		logger.Info(ctx, "Kafka Producer Created")
		defer kafkaProducer.Close()
	}

	pubsubPublisher, err := pubsub.NewPubSubPublisher(ctx, configs.PROJECT_ID)
	if err != nil {
		logger.Error(ctx, "Failed to create Pub/Sub Publisher: %v", err)
	} else {
		logger.Info(ctx, "Pub/Sub Publisher Created")
		defer pubsubPublisher.Close()
	}

	var gcsUploader gcs.GcsInterface
	if configs.BUCKET_NAME != "" {
		gcsUploader, err = gcs.NewGCSClient(ctx, configs.BUCKET_NAME, configs.REPORT_DESTINATION_FOLDER)
		if err != nil {
			logger.Error(ctx, "Failed to create GCS client: %v", err)
		} else {
			defer gcsUploader.Close(ctx)
		}
	}

	// Connect to Redis. Caching is best effort; a missing Redis only costs
	// the product list cache.
	redisClient, err := redis.ConnectToRedis(ctx, configs.GetRedisConfig(), nil)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: %v", err)
	}

	numberOfWorkers, er := strconv.Atoi(configs.WORKER_POOL)
	if er != nil {
		logger.Error(ctx, er)
		numberOfWorkers = 5
	}
	workerPool := worker.NewWorkerPool(numberOfWorkers)
	defer workerPool.Stop()

	deps := router.Dependencies{
		MDB:           mdb,
		WorkerPool:    workerPool,
		KafkaProducer: kafkaProducer,
		PubSub:        pubsubPublisher,
		GCSUploader:   gcsUploader,
	}
	if redisClient != nil {
		deps.RedisClient = redisClient.Client
	}

	r := router.SetupRouter(deps)

	port := configs.SERVER_PORT

	if err := r.Run(":" + port); err != nil {
		logger.Error(ctx, "Failed to run server: %v", err)
	}
}
