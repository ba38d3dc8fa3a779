package main

import (
	"alxtravel/src/boot"
	"alxtravel/src/common"
	"alxtravel/src/config"
	"alxtravel/src/db"
	"alxtravel/src/middlewares"
	"alxtravel/src/types"
	"alxtravel/src/utils"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	apiPrefix string = "/api/v1"
)

var isoDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := types.ParseDate(date)
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("isodate", isoDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders, middlewares.RequestID)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func maintenanceModeMiddleware(g *gin.Engine) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if config.IsMaintenanceMode() {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
	})
	return g
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func registerRoutes(g *gin.Engine, svc *common.Service) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	userHandlers(apiv1, svc)
	listingHandlers(apiv1, svc)
	bookingHandlers(apiv1, svc)
	reviewHandlers(apiv1, svc)
	return apiv1
}

func corsMiddleware() gin.HandlerFunc {
	if utils.IsLocal() {
		return cors.Default()
	}
	appHost := os.Getenv("APP_HOST")
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "X-Request-ID")
	cc.ExposeHeaders = append(cc.ExposeHeaders, "X-Request-ID")
	cc.AllowOriginFunc = func(origin string) bool {
		if appHost == "" {
			return false
		}
		match, _ := regexp.MatchString(appHost, origin)
		return match
	}
	cc.AllowAllOrigins = false
	return cors.New(cc)
}

func initLogger() {
	logDir := config.GetEnv("LOG_DIR", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.Printf("Error creating log directory %s: %s\n", logDir, err.Error())
		return
	}
	serverLogs := path.Join(logDir, "server.log")
	apiLogs := path.Join(logDir, "api.log")
	gin.ForceConsoleColor()

	f, err := os.Create(apiLogs)
	if err != nil {
		log.Printf("Error creating %s: %s\n", apiLogs, err.Error())
	} else {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	if utils.IsLocal() {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	if utils.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	initLogger()

	gormDB := boot.InitDb()
	publisher := boot.InitPublisher(context.Background(), config.GetEventsBackend())
	if closer, ok := publisher.(interface{ Close() }); ok {
		defer closer.Close()
	}
	svc := common.NewService(db.NewStore(gormDB), publisher)

	boot.InitScheduler(svc, config.GetSweepInterval())
	defer boot.StopScheduler()

	router := setupRouter()
	router.Use(corsMiddleware())
	registerValidators()
	router = maintenanceModeMiddleware(router)
	registerRoutes(router, svc)

	if err := router.Run(":" + config.GetPort()); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
