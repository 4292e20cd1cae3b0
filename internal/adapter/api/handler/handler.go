package handler

import (
	"moment/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	providerHandler *ProviderHandler
	serviceHandler  *ServiceHandler
	bookingHandler  *BookingHandler
	healthHandler   *HealthHandler
	uploadHandler   *UploadHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	providerUseCase *usecase.ProviderUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	bookingUseCase *usecase.BookingUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	providerHandler = NewProviderHandler(providerUseCase)
	serviceHandler = NewServiceHandler(serviceUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	healthHandler = NewHealthHandler()
}

func SetupUploadHandler(storage FileStorage) {
	uploadHandler = NewUploadHandler(storage)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProviderHandler() *ProviderHandler {
	return providerHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}
