package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"moment/internal/adapter/api"
	"moment/internal/adapter/api/handler"
	apimiddleware "moment/internal/adapter/api/middleware"
	"moment/internal/adapter/api/router"
	"moment/internal/adapter/repository"
	"moment/internal/infrastructure/firebase"
	"moment/internal/infrastructure/storage"
	"moment/internal/usecase"
	"moment/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}
		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}
		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	providerRepo := repository.NewFirestoreProviderRepository(firestoreClient)
	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	authUseCase := usecase.NewAuthUseCase(userRepo, providerRepo, firebaseAuthClient, cfg.AdminSecret)
	userUseCase := usecase.NewUserUseCase(userRepo)
	providerUseCase := usecase.NewProviderUseCase(providerRepo, serviceRepo)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo, providerRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo)

	handler.Setup(authUseCase, userUseCase, providerUseCase, serviceUseCase, bookingUseCase)
	handler.SetupUploadHandler(storageClient)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
