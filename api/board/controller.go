package boardapi

import (
	"net/http"
	"strings"

	"github.com/aulamaze/aulamaze-api/api/identity"
	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/aulamaze/aulamaze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardController manages board CRUD and puzzle generation endpoints.
type BoardController struct {
	boards  i.BoardManager
	puzzles i.PuzzleGenerator
}

// NewBoardController initializes a BoardController.
func NewBoardController(boards i.BoardManager, puzzles i.PuzzleGenerator) *BoardController {
	return &BoardController{
		boards:  boards,
		puzzles: puzzles,
	}
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("/", bc.create)
		boards.GET("/", bc.list)
		boards.GET("/:ID", bc.get)
		boards.DELETE("/:ID", bc.delete)
		boards.POST("/:ID/puzzle", bc.puzzle)
	}
}

// create handles board creation from cells or CSV content.
func (bc *BoardController) create(ctx *gin.Context) {
	ownerID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request CreateBoardRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, cols := request.Rows, request.Cols
	if rows == 0 && cols == 0 {
		rows, cols = dmn.DefaultRows, dmn.DefaultCols
	}

	var board *dmn.Board
	if request.CSV != "" {
		board, err = bc.boards.CreateFromCSV(ownerID, request.Name, rows, cols, strings.NewReader(request.CSV))
	} else {
		board, err = bc.boards.Create(ownerID, request.Name, rows, cols, request.Cells)
	}
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newBoardResponse(board))
}

// list returns every board owned by the authenticated teacher.
func (bc *BoardController) list(ctx *gin.Context) {
	ownerID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	boards, err := bc.boards.ByOwner(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]*BoardResponse, 0, len(boards))
	for _, b := range boards {
		response = append(response, newBoardResponse(b))
	}
	ctx.JSON(http.StatusOK, response)
}

// get returns one board by ID.
func (bc *BoardController) get(ctx *gin.Context) {
	ownerID, boardID, ok := bc.requestIDs(ctx)
	if !ok {
		return
	}

	board, err := bc.boards.ByID(ownerID, boardID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, newBoardResponse(board))
}

// delete removes one board by ID.
func (bc *BoardController) delete(ctx *gin.Context) {
	ownerID, boardID, ok := bc.requestIDs(ctx)
	if !ok {
		return
	}

	if err := bc.boards.Delete(ownerID, boardID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// puzzle generates the wall layout and targets for a board.
func (bc *BoardController) puzzle(ctx *gin.Context) {
	ownerID, boardID, ok := bc.requestIDs(ctx)
	if !ok {
		return
	}

	var request PuzzleRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	puzzle, err := bc.puzzles.Generate(ctx.Request.Context(), ownerID, boardID, dmn.PuzzleSpec{
		Seed:           request.Seed,
		ExtraWalls:     request.ExtraWalls,
		TargetCategory: request.TargetCategory,
		TargetCount:    request.TargetCount,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(puzzle))
}

// requestIDs extracts the authenticated owner and the :ID path parameter.
func (bc *BoardController) requestIDs(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	ownerID, err := identity.CurrentUserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	boardID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board ID"})
		return uuid.Nil, uuid.Nil, false
	}
	return ownerID, boardID, true
}
