package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanbook/internal/adapter/http"
	adpmw "loanbook/internal/adapter/middleware"
	"loanbook/internal/adapter/repository/mysql"
	"loanbook/internal/config"
	"loanbook/internal/infrastructure/cache"
	"loanbook/internal/infrastructure/db"
	loanuc "loanbook/internal/usecase/loan"
	paymentuc "loanbook/internal/usecase/payment"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loanuc.NewUsecase(loans, payments, txm))
	ph := httpadp.NewPaymentHandler(paymentuc.NewUsecase(loans, payments, txm))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("",
		adpmw.Auth([]byte(cfg.JWTSecret)),
		adpmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)
	api.POST("/loans", lh.CreateLoan)
	api.GET("/loans", lh.ListLoans)
	api.GET("/loans/:loan_id", lh.GetLoan)
	api.PUT("/loans/:loan_id", lh.UpdateLoan)
	api.PATCH("/loans/:loan_id", lh.UpdateLoan)
	api.DELETE("/loans/:loan_id", lh.DeleteLoan)
	api.POST("/loans/:loan_id/restore", lh.RestoreLoan)
	api.DELETE("/loans/:loan_id/hard", lh.HardDeleteLoan)

	api.POST("/payments", ph.CreatePayment)
	api.GET("/payments", ph.ListPayments)
	api.GET("/payments/:payment_id", ph.GetPayment)
	api.DELETE("/payments/:payment_id", ph.DeletePayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
