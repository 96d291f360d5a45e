package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aulamaze/aulamaze-api/api"
	boardapi "github.com/aulamaze/aulamaze-api/api/board"
	api_i "github.com/aulamaze/aulamaze-api/api/i"
	"github.com/aulamaze/aulamaze-api/api/identity"
	"github.com/aulamaze/aulamaze-api/config"
	"github.com/aulamaze/aulamaze-api/infrastructure/cache"
	"github.com/aulamaze/aulamaze-api/infrastructure/repo"
	"github.com/aulamaze/aulamaze-api/infrastructure/token"
	"github.com/aulamaze/aulamaze-api/service"
	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	boardRepo       i.BoardRepo
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	boardService    i.BoardManager
	puzzleCache     i.PuzzleCache
	puzzleService   i.PuzzleGenerator
	authController  api_i.Controller
	boardController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

// componentLogger builds a prefixed, colored logger for one component.
func componentLogger(name, color string) *log.Logger {
	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return log.New(os.Stdout, prefix, log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos() {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs.DBName, "users")
	boardRepo = repo.NewBoardRepo(mongoClient, config.Envs.DBName, "boards")
	appLogger.Println("Repositories initialized")
}

func initAuthService() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	authService = service.NewAuth(userRepo, jwtTokenizer)
	appLogger.Println("Auth service initialized")
}

func initBoardService() {
	boardService = service.NewBoard(boardRepo)
	appLogger.Println("Board service initialized")
}

func initPuzzleService() {
	var err error
	puzzleCache, err = cache.NewRedisPuzzleCache(
		redisClient,
		config.Envs.PuzzleCacheTTL,
		componentLogger("PUZZLE-CACHE", config.ColorCyan),
	)
	if err != nil {
		appLogger.Printf("Creating puzzle cache: %v", err)
		os.Exit(1)
	}

	puzzleService = service.NewPuzzle(
		boardService,
		puzzleCache,
		componentLogger("PUZZLE", config.ColorMagenta),
	)
	appLogger.Println("Puzzle service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)
	boardController = boardapi.NewBoardController(boardService, puzzleService)
	appLogger.Println("Controllers initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, boardController},
		AuthorizationMiddleware: identity.Authorize(jwtTokenizer),
	})
	appLogger.Println("Router initialized")
}

func main() {
	appLogger = componentLogger("APP", config.ColorGreen)
	ctx := context.Background()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()
	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos()
	initAuthService()
	initBoardService()
	initPuzzleService()
	initControllers()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("Server exited with error: %v", err)
		os.Exit(1)
	}
}
