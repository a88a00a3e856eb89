package main

import (
	"context"
	"log"
	"os"
	"time"

	"furniture-store/internal/controllers/http"
	mmysql "furniture-store/internal/infra/mysql"
	"furniture-store/internal/infra/rabbitmq"
	mysqlrepo "furniture-store/internal/repository/mysql"
	"furniture-store/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	store := mysqlrepo.NewStore(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	orderRepo := mysqlrepo.NewOrderRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "store.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	checkout := services.NewCheckoutService(store, orderRepo, publisher)
	writer := services.NewOrderWriterService(store)
	stock := services.NewStockService(store, publisher)
	catalog := services.NewCatalogService(productRepo, orderRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	catalog.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := catalog.WarmupProductCache(context.Background()); err != nil {
			log.Printf("Failed to warm up product cache: %v", err)
		} else {
			log.Println("Product cache warmed up")
		}
	}()

	handler := http.NewHandler(checkout, writer, stock, catalog)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting furniture store on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
