package docstore

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parameter parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// NewRouter returns a gin engine serving the document-store API over both
// collections: create, get-by-ID, partial update, delete-by-ID and
// collection query. gin.Default supplies request logging and recovery.
func NewRouter(s *Store) *gin.Engine {
	r := gin.Default() // Standard logging and recovery middleware
	// Same REST surface for each collection
	for _, col := range []string{Wallets, Transactions} {
		r.GET("/"+col, ListHandler(s, col))             // Collection query
		r.POST("/"+col, CreateHandler(s, col))          // Insert with auto-or-provided ID
		r.GET("/"+col+"/:id", GetHandler(s, col))       // Get by ID
		r.PATCH("/"+col+"/:id", PatchHandler(s, col))   // Merge given fields
		r.DELETE("/"+col+"/:id", DeleteHandler(s, col)) // Delete by ID
	}
	return r
}

// ListHandler serves collection queries with equality filters plus
// _page/_limit/_sort/_order
func ListHandler(s *Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := Query{Filter: map[string]string{}} // Build the query from the URL
		for key, values := range c.Request.URL.Query() {
			if len(values) == 0 {
				continue
			}
			value := values[0] // First value wins
			switch key {
			case "_page":
				// Parse the page number
				if v, err := strconv.Atoi(value); err == nil && v > 0 {
					q.Page = v
				}
			case "_limit":
				// Parse the page size
				if v, err := strconv.Atoi(value); err == nil && v > 0 {
					q.Limit = v
				}
			case "_sort":
				q.Sort = value // Sort field
			case "_order":
				q.Order = value // Sort direction
			default:
				q.Filter[key] = value // Field equality filter
			}
		}
		c.JSON(http.StatusOK, s.List(collection, q)) // Return the matching records
	}
}

// CreateHandler inserts one document, assigning an ID when none is given
func CreateHandler(s *Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc Document // Bind the JSON body as a schemaless record
		if err := c.ShouldBindJSON(&doc); err != nil {
			// Reject unparseable bodies
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := s.Insert(collection, doc) // Store the record
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,  // Target collection
				"error":      err.Error(), // Failure detail
			}).Error("Failed to insert document")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert document"})
			return
		}
		c.JSON(http.StatusCreated, created) // Return the stored representation
	}
}

// GetHandler serves one document by ID
func GetHandler(s *Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, found := s.Get(collection, c.Param("id")) // Look up the record
		if !found {
			c.JSON(http.StatusNotFound, gin.H{}) // Empty object on 404, json-server style
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// PatchHandler merges the given fields into one document
func PatchHandler(s *Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields Document // Partial update body
		if err := c.ShouldBindJSON(&fields); err != nil {
			// Reject unparseable bodies
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		doc, found, err := s.Patch(collection, c.Param("id"), fields) // Apply the merge
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,  // Target collection
				"error":      err.Error(), // Failure detail
			}).Error("Failed to patch document")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to patch document"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{}) // Empty object on 404, json-server style
			return
		}
		c.JSON(http.StatusOK, doc) // Return the merged representation
	}
}

// DeleteHandler removes one document by ID
func DeleteHandler(s *Store, collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := s.Delete(collection, c.Param("id")) // Drop the record
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"collection": collection,  // Target collection
				"error":      err.Error(), // Failure detail
			}).Error("Failed to delete document")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{}) // Empty object on 404, json-server style
			return
		}
		c.JSON(http.StatusOK, gin.H{}) // json-server responds with an empty object
	}
}
