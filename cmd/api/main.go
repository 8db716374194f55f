package main

import (
	"log"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/cache"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
		&model.User{},
		&model.Post{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	transactionRepo := infraRepo.NewTransactionGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	postRepo := infraRepo.NewPostGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//Redisは任意（REDIS_ADDRが空なら使わない）
	var productCache usecase.ProductCache
	if cfg.RedisAddr != "" {
		pc, err := cache.NewProductCache(cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		productCache = pc
	}

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, txManager, productCache, idGen, clock)
	transactionUC := usecase.NewTransactionUsecase(transactionRepo)
	userUC := usecase.NewUserUsecase(userRepo, idGen, clock)
	postUC := usecase.NewPostUsecase(postRepo, idGen, clock)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	transactionH := handler.NewTransactionHandler(transactionUC)
	userH := handler.NewUserHandler(userUC)
	postH := handler.NewPostHandler(postUC)

	//Server起動
	if err := server.Start(":"+cfg.Port, productH, transactionH, userH, postH); err != nil {
		log.Fatal(err)
	}
}
