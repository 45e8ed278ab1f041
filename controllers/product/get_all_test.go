package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func TestGetProductsPriceFilterUsesEffectivePrice(t *testing.T) {
	gdb, mock := newMockDB(t)

	// a product priced only through price (offer_price 0) must still pass a
	// min_price filter
	mock.ExpectQuery(`COALESCE\(NULLIF\(offer_price, 0\), price\) >= \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "offer_price"}).
			AddRow("p-1", "Plain Tee", 800.0, 0.0))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/user/products?min_price=500", nil)

	GetProducts(gdb)(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Plain Tee") {
		t.Fatalf("product missing from filtered listing: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
