package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"checkmate/internal/application/board/usecases"
	"checkmate/internal/domain/board"
	"checkmate/internal/shared/constants"
	"checkmate/internal/shared/logger"
	"checkmate/internal/shared/utils"
)

type BoardHandler struct {
	createUseCase      *usecases.CreateBoardUseCase
	getUseCase         *usecases.GetBoardUseCase
	listUseCase        *usecases.ListBoardsUseCase
	updateUseCase      *usecases.UpdateBoardUseCase
	deleteUseCase      *usecases.DeleteBoardUseCase
	recordMoveUseCase  *usecases.RecordMoveUseCase
	addAnalysisUseCase *usecases.AddAnalysisUseCase
	logger             logger.Interface
}

func NewBoardHandler(
	createUC *usecases.CreateBoardUseCase,
	getUC *usecases.GetBoardUseCase,
	listUC *usecases.ListBoardsUseCase,
	updateUC *usecases.UpdateBoardUseCase,
	deleteUC *usecases.DeleteBoardUseCase,
	recordMoveUC *usecases.RecordMoveUseCase,
	addAnalysisUC *usecases.AddAnalysisUseCase,
	logger logger.Interface,
) *BoardHandler {
	return &BoardHandler{
		createUseCase:      createUC,
		getUseCase:         getUC,
		listUseCase:        listUC,
		updateUseCase:      updateUC,
		deleteUseCase:      deleteUC,
		recordMoveUseCase:  recordMoveUC,
		addAnalysisUseCase: addAnalysisUC,
		logger:             logger,
	}
}

type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	FEN         string `json:"fen" binding:"omitempty,fen"`
	PGN         string `json:"pgn"`
	Orientation string `json:"orientation" binding:"omitempty,oneof=white black"`
	Notes       string `json:"notes"`
}

type UpdateBoardRequest struct {
	Name            *string                `json:"name"`
	FEN             *string                `json:"fen" binding:"omitempty,fen"`
	GameState       *board.GameState       `json:"game_state"`
	AnalysisResults []board.AnalysisResult `json:"analysis_results"`
	PGN             *string                `json:"pgn"`
	GameHistory     []board.HistoryEntry   `json:"game_history"`
	Orientation     *string                `json:"orientation" binding:"omitempty,oneof=white black"`
	Notes           *string                `json:"notes"`
}

type RecordMoveRequest struct {
	Move string `json:"move" binding:"required"`
	FEN  string `json:"fen" binding:"required,fen"`
}

type AddAnalysisRequest struct {
	BestMove           string  `json:"best_move" binding:"required"`
	Evaluation         float64 `json:"evaluation"`
	PrincipalVariation string  `json:"principal_variation"`
	Depth              int     `json:"depth"`
}

// BoardResponse is the public shape of a saved board.
type BoardResponse struct {
	ID              uint                   `json:"id"`
	Name            string                 `json:"name"`
	FEN             string                 `json:"fen"`
	GameState       board.GameState        `json:"game_state"`
	AnalysisResults []board.AnalysisResult `json:"analysis_results,omitempty"`
	PGN             string                 `json:"pgn,omitempty"`
	GameHistory     []board.HistoryEntry   `json:"game_history,omitempty"`
	Orientation     string                 `json:"orientation"`
	Notes           string                 `json:"notes,omitempty"`
	NotesHTML       string                 `json:"notes_html,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

func toBoardResponse(b *board.Board) BoardResponse {
	return BoardResponse{
		ID:              b.ID,
		Name:            b.Name,
		FEN:             b.FEN,
		GameState:       b.GameState,
		AnalysisResults: b.AnalysisResults,
		PGN:             b.PGN,
		GameHistory:     b.GameHistory,
		Orientation:     b.Orientation,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       b.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *BoardHandler) Create(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	var req CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateBoardCommand{
		UserID:      userID,
		Name:        req.Name,
		FEN:         req.FEN,
		PGN:         req.PGN,
		Orientation: req.Orientation,
		Notes:       req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "board created", toBoardResponse(created))
}

func (h *BoardHandler) Get(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), boardID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := toBoardResponse(result.Board)
	resp.NotesHTML = result.NotesHTML
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *BoardHandler) List(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListBoardsQuery{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]BoardResponse, 0, len(result.Boards))
	for _, b := range result.Boards {
		items = append(items, toBoardResponse(b))
	}

	utils.ListSuccessResponse(c, items, result.Total, page, pageSize)
}

func (h *BoardHandler) Update(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateBoardCommand{
		ID:              boardID,
		UserID:          userID,
		Name:            req.Name,
		FEN:             req.FEN,
		GameState:       req.GameState,
		AnalysisResults: req.AnalysisResults,
		PGN:             req.PGN,
		GameHistory:     req.GameHistory,
		Orientation:     req.Orientation,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "board updated", toBoardResponse(updated))
}

func (h *BoardHandler) Delete(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), boardID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *BoardHandler) RecordMove(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req RecordMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.recordMoveUseCase.Execute(c.Request.Context(), usecases.RecordMoveCommand{
		BoardID: boardID,
		UserID:  userID,
		Move:    req.Move,
		FEN:     req.FEN,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "move recorded", toBoardResponse(updated))
}

func (h *BoardHandler) AddAnalysis(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	boardID, ok := parseBoardID(c)
	if !ok {
		return
	}

	var req AddAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.addAnalysisUseCase.Execute(c.Request.Context(), usecases.AddAnalysisCommand{
		BoardID: boardID,
		UserID:  userID,
		Result: board.AnalysisResult{
			BestMove:           req.BestMove,
			Evaluation:         req.Evaluation,
			PrincipalVariation: req.PrincipalVariation,
			Depth:              req.Depth,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "analysis added", toBoardResponse(updated))
}

func parseBoardID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid board id")
		return 0, false
	}
	return uint(id), true
}
