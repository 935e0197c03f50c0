package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"wallet_tracker/internal/ledger"  // Core ledger operations
	"wallet_tracker/internal/storage" // Persistence capability and options

	"github.com/gin-gonic/gin" // Gin web framework

	"github.com/sirupsen/logrus" // Logging library
)

// CreateWalletRequest represents a wallet creation request
type CreateWalletRequest struct {
	Username       string  `json:"username" binding:"required"`     // Display name must be provided
	InitialBalance float64 `json:"initial_balance" binding:"gte=0"` // Starting balance, never negative
}

// TransactionRequest represents a credit/debit request
type TransactionRequest struct {
	Type   string  `json:"type" binding:"required,oneof=CREDIT DEBIT"` // Transaction type
	Amount float64 `json:"amount" binding:"required,gt=0"`             // Positive amount; zero and negatives rejected
}

// CreateWalletHandler creates the wallet (one wallet per client session)
func CreateWalletHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateWalletRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check if a wallet already exists (single-wallet model)
		existing, err := l.GetWallet(c.Request.Context())
		if err != nil {
			// If the lookup fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check wallet"})
			return
		}
		if existing != nil {
			// If a wallet exists, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Wallet already exists"})
			return
		}
		// Create the wallet
		wallet, err := l.CreateWallet(c.Request.Context(), req.Username, req.InitialBalance)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Requested display name
				"error":    err.Error(),  // Error message
			}).Error("Failed to create wallet")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": "Wallet created", "wallet": wallet})
	}
}

// GetWalletHandler returns the current wallet with its display-formatted balance
func GetWalletHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet, err := l.GetWallet(c.Request.Context()) // Fetch the current wallet
		if err != nil {
			// If the lookup fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wallet"})
			return
		}
		if wallet == nil {
			// Absent wallet maps to not found
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		// Return wallet info with the formatted balance
		c.JSON(http.StatusOK, gin.H{
			"wallet":            wallet,                                // Wallet entity
			"balance_formatted": ledger.FormatCurrency(wallet.Balance), // USD display form
		})
	}
}

// AddTransactionHandler records a credit or debit against the wallet
func AddTransactionHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionRequest // Bind JSON request to struct
		// Validate request; binding rejects unknown types and non-positive amounts
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Record the transaction
		wallet, transaction, err := l.AddTransaction(c.Request.Context(), req.Type, req.Amount)
		if errors.Is(err, storage.ErrNoWallet) {
			// No wallet to record against
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"amount": req.Amount,  // Requested amount
				"type":   req.Type,    // Requested type
				"error":  err.Error(), // Error message
			}).Error("Failed to add transaction")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add transaction"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{
			"message":     "Transaction recorded", // Confirmation
			"wallet":      wallet,                 // Wallet with the updated balance
			"transaction": transaction,            // The recorded transaction
		})
	}
}

// GetTransactionsHandler returns a page of transaction history
func GetTransactionsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		sortField := storage.SortByDate // Default sort field
		// Accept only the supported sort fields
		if s := c.Query("sort"); s == storage.SortByDate || s == storage.SortByAmount {
			sortField = s
		}
		order := storage.OrderDesc // Newest first by default
		// Accept only the supported directions
		if o := c.Query("order"); o == storage.OrderAsc || o == storage.OrderDesc {
			order = o
		}
		// Fetch the requested page
		result, err := l.GetTransactions(c.Request.Context(), storage.ListOptions{
			Page:  page,      // Requested page
			Limit: pageSize,  // Requested page size
			Sort:  sortField, // Sort field
			Order: order,     // Sort direction
		})
		if err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// Calculate total pages
		totalPages := (result.Total + pageSize - 1) / pageSize
		c.JSON(http.StatusOK, gin.H{
			"transactions": result.Transactions, // List of transactions
			"page":         page,                // Current page
			"page_size":    pageSize,            // Page size
			"total":        result.Total,        // Total transactions
			"total_pages":  totalPages,          // Total pages
		})
	}
}

// ExportTransactionsHandler serves the full history as a CSV attachment
func ExportTransactionsHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename, data, err := l.ExportCSV(c.Request.Context()) // Build the export
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to export transactions")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
			return
		}
		// Trigger a file download with the dated filename
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	}
}

// ResetWalletHandler deletes the wallet and its transaction history
func ResetWalletHandler(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Reset the wallet
		if err := l.ResetWallet(c.Request.Context()); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to reset wallet")
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset wallet"})
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"message": "Wallet reset"})
	}
}
