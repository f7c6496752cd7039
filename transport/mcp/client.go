package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/boggle-game/game/engine"
	"github.com/wricardo/boggle-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Boggle Word Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Boggle Word Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Find words on a square letter grid by chaining adjacent cells (including
diagonals) without reusing a cell. Players take turns; the highest score
after everyone has played wins.

AVAILABLE TOOLS:
- create_session: Create a new game on a board configuration
- list_sessions: List active sessions
- get_session: Session details and game state
- game_state: Board, scores and whose turn it is
- submit_word: Submit a word for the current player
- end_turn: Pass to the next player (the last turn ends the game)
- check_word: Ask what a word would score without submitting it
- solve_board: List every word on the board
- reset_game: Start over on the same board
- word_history: Past submissions
- list_configs: Available boards
- game_instructions: Full rules`),
	)

	c.registerTools()
}

func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional board configuration",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the board configuration to use (optional, see list_configs)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Turns
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the board, each player's words and score, and whose turn it is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_word",
		Description: "Submit a word for the current player. Rejected words score nothing but do not end the turn.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"word": map[string]interface{}{
					"type":        "string",
					"description": "Word to submit (case-insensitive)",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleSubmitWord)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "end_turn",
		Description: "End the current player's turn. Ending the last player's turn ends the game.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleEndTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game on the same board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "word_history",
		Description: "Get the submission history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Oldest first (asc) or newest first (desc, default)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleWordHistory)

	// Board queries
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "check_word",
		Description: "Check whether a word is valid on the board and what it would score, without submitting it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"word": map[string]interface{}{
					"type":        "string",
					"description": "Word to check",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleCheckWord)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_board",
		Description: "List every dictionary word that can be formed on the session's board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolveBoard)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete game rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// requireString returns a tool error result when key is missing or blank
func requireString(args map[string]interface{}, key string) (string, *mcp.CallToolResult) {
	v, _ := args[key].(string)
	if strings.TrimSpace(v) == "" {
		return "", mcp.NewToolResultError(key + " is required")
	}
	return v, nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		status := "in progress"
		if s.GameState != nil && s.GameState.GameOver {
			status = "finished"
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Created: %s, %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), status)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireString(arguments(request), "session_id")
	if errResult != nil {
		return errResult, nil
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireString(arguments(request), "session_id")
	if errResult != nil {
		return errResult, nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleSubmitWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireString(args, "session_id")
	if errResult != nil {
		return errResult, nil
	}
	word, errResult := requireString(args, "word")
	if errResult != nil {
		return errResult, nil
	}

	var result service.SubmitResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/words"), map[string]string{"word": word}, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSubmitResult(&result)), nil
}

func (c *Client) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireString(arguments(request), "session_id")
	if errResult != nil {
		return errResult, nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/end-turn"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	header := fmt.Sprintf("Turn ended. Player %d is up.", state.CurrentPlayer+1)
	if state.GameOver {
		header = "Game over."
	}
	return mcp.NewToolResultText(header + "\n\n" + formatGameState(&state)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireString(arguments(request), "session_id")
	if errResult != nil {
		return errResult, nil
	}

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/reset"), nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleWordHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireString(args, "session_id")
	if errResult != nil {
		return errResult, nil
	}

	params := url.Values{}
	if page, ok := args["page"].(float64); ok {
		params.Set("page", fmt.Sprintf("%d", int(page)))
	}
	if limit, ok := args["limit"].(float64); ok {
		params.Set("limit", fmt.Sprintf("%d", int(limit)))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleCheckWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireString(args, "session_id")
	if errResult != nil {
		return errResult, nil
	}
	word, errResult := requireString(args, "word")
	if errResult != nil {
		return errResult, nil
	}

	var result service.CheckResult
	path := sessionPath(sessionID, "/check") + "?word=" + url.QueryEscape(word)
	if err := c.apiCall(ctx, "GET", path, nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCheckResult(&result)), nil
}

func (c *Client) handleSolveBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireString(arguments(request), "session_id")
	if errResult != nil {
		return errResult, nil
	}

	var result service.SolveResult
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/solutions"), nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Words on board: %d | Max score: %d", result.Count, result.MaxScore)
	if result.LongestWord != "" {
		fmt.Fprintf(&b, " | Longest: %s", result.LongestWord)
	}
	b.WriteString("\n\n")
	b.WriteString(strings.Join(result.Words, " "))
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (config_id: %s)\n  %s\n  Board: %dx%d, Min word length: %d, Players: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Size, config.Size, config.MinWordLength, config.Players)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Boggle Word Game - Complete Instructions

GAME OBJECTIVE:
Score more points than the other players by finding words on the board.

FORMING WORDS:
• Start on any cell and move to one of its up to 8 neighbours (horizontal,
  vertical or diagonal) for each following letter
• A cell can be used at most once per word
• The word must be in the game dictionary
• The word must be at least the board's minimum length (usually 4)

SCORING:
• A word scores (length - minimum length + 1) points
• With a minimum of 4: CATS = 1, CRATE = 2, CRATES = 3

TURNS:
• Players play one after another, starting with player 1
• Submit as many words as you like during your turn
• A player cannot score the same word twice
• end_turn passes to the next player; after the last player's turn the
  game is over and the highest score wins (equal top scores are a tie)

VERDICTS:
• accepted - the word scored
• too_short - shorter than the minimum length
• not_a_word - not in the dictionary
• not_on_board - cannot be traced on the grid
• already_found - this player already scored it

TIPS:
• check_word tells you the verdict and the cell path without using your turn
• Plurals and longer forms count separately (CAT and CATS are both words)
• solve_board shows every word; use it to review a finished game

Good luck!`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board %dx%d (min word length %d)\n\n", state.Size, state.Size, state.MinWordLength)
	for _, row := range state.Board {
		b.WriteString(strings.Join(strings.Split(row, ""), " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, p := range state.Players {
		marker := "  "
		if !state.GameOver && i == state.CurrentPlayer {
			marker = "▶ "
		}
		fmt.Fprintf(&b, "%sPlayer %d Score: %d", marker, p.Number, p.Score)
		if len(p.Words) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(p.Words, ", "))
		}
		b.WriteString("\n")
	}

	if state.GameOver {
		b.WriteString("\nGAME OVER")
	}
	if state.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s", state.Message)
	}

	return b.String()
}

func formatSubmitResult(result *service.SubmitResult) string {
	var b strings.Builder
	if result.Accepted {
		fmt.Fprintf(&b, "✓ %s (+%d)\n", result.Message, result.Points)
	} else {
		fmt.Fprintf(&b, "✗ %s\n", result.Message)
	}
	fmt.Fprintf(&b, "Player %d Score: %d\n", result.Player, result.Score)
	if len(result.Path) > 0 {
		fmt.Fprintf(&b, "Path: %s\n", formatPath(result.Path))
	}
	return b.String()
}

func formatCheckResult(result *service.CheckResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", result.Word, result.Verdict)
	fmt.Fprintf(&b, "In dictionary: %t | On board: %t | Points: %d\n",
		result.InDictionary, result.OnBoard, result.Points)
	if len(result.Path) > 0 {
		fmt.Fprintf(&b, "Path: %s\n", formatPath(result.Path))
	}
	return b.String()
}

func formatPath(path []engine.Position) string {
	cells := make([]string, len(path))
	for i, p := range path {
		cells[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return strings.Join(cells, " → ")
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Word History (Page %d/%d), Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalSubmissions)

	for _, entry := range history.Submissions {
		status := "✓"
		if entry.Verdict != engine.Accepted {
			status = "✗"
		}
		fmt.Fprintf(&b, "%d. Player %d %s %s %s",
			entry.SubmissionNumber, entry.Player+1, entry.Word, status, entry.Verdict)
		if entry.Points > 0 {
			fmt.Fprintf(&b, " (+%d)", entry.Points)
		}
		b.WriteString("\n")
	}

	return b.String()
}
