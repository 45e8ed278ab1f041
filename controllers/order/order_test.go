package orderControllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MuhammadMustajeeb/wearly/pricing"
)

const testAddressID = "5a7e4a9c-6f0d-4c2b-9a91-2f3b4c5d6e7f"

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

func TestPlaceOrderSucceedsWhenCartClearFails(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "addresses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "phone"}).
			AddRow(testAddressID, "user-1", "Asad Khan", "03001234567"))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "name", "price", "offer_price", "category"}).
			AddRow(testProductA, "seller-1", "Graphic Tee", 1200.0, 1000.0, "graphic"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	// the order is committed, then the cart wipe dies
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	engine := &pricing.Engine{Adjustments: pricing.DefaultAdjustments(), DefaultShippingFee: 100}
	req := PlaceOrderRequest{
		CartData: map[string]int{
			testProductA + ":M:black": 2,
			testProductA + ":L:black": 1,
		},
		Address:       testAddressID,
		PaymentMethod: "COD",
	}

	order, err := PlaceOrder(gdb, engine, "user-1", req)
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected a persisted order id")
	}
	if order.Amount != 3310 {
		t.Fatalf("amount: got %v want 3310", order.Amount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserOrdersIncludeRemovedProducts(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "address_id", "shipping_fee", "amount"}).
			AddRow("order-1", "user-1", testAddressID, 100.0, 3310.0))
	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE "addresses"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(testAddressID, "user-1"))
	mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "size", "color", "unit_price"}).
			AddRow(1, "order-1", testProductA, 2, "M", "black", 1000.0))
	// anchored: the history preload must not carry the soft-delete scope
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "deleted_at"}).
			AddRow(testProductA, "Retired Tee", time.Now()))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders/my", nil)
	c.Set("user_id", "user-1")

	GetUserOrdersHandler(gdb)(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want 200, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Retired Tee") {
		t.Fatalf("deleted product not resolved in order history: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
