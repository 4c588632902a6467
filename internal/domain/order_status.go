package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// OrderStatus is persisted as its integer code. Codes are assigned by hand
// and must never be renumbered: stored rows are read back through this table.
type OrderStatus int

const (
	WaitingPayment OrderStatus = 1
	Paid           OrderStatus = 2
	Shipped        OrderStatus = 3
	Delivered      OrderStatus = 4
	Cancelled      OrderStatus = 5
)

var orderStatusNames = map[OrderStatus]string{
	WaitingPayment: "WAITING_PAYMENT",
	Paid:           "PAID",
	Shipped:        "SHIPPED",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

// OrderStatuses lists every status in code order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{WaitingPayment, Paid, Shipped, Delivered, Cancelled}
}

func (s OrderStatus) Code() int { return int(s) }

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusNames[s]
	return ok
}

func (s OrderStatus) String() string {
	if n, ok := orderStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

// OrderStatusOf maps a stored code back to its status. Unknown codes are an
// error, never a fallback status.
func OrderStatusOf(code int) (OrderStatus, error) {
	s := OrderStatus(code)
	if !s.Valid() {
		return 0, Invalid("Invalid OrderStatus code %d", code)
	}
	return s, nil
}

// ParseOrderStatus maps a symbolic name (WAITING_PAYMENT, PAID, ...) to its status.
func ParseOrderStatus(name string) (OrderStatus, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for s, sn := range orderStatusNames {
		if sn == n {
			return s, nil
		}
	}
	return 0, Invalid("Invalid OrderStatus name %q", name)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, Invalid("Invalid OrderStatus code %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return Invalid("order status must be a string")
	}
	v, err := ParseOrderStatus(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Scan implements sql.Scanner over the integer code column.
func (s *OrderStatus) Scan(src any) error {
	var code int64
	switch v := src.(type) {
	case int64:
		code = v
	case int32:
		code = int64(v)
	case int:
		code = int64(v)
	case float64:
		code = int64(v)
	case []byte:
		if _, err := fmt.Sscan(string(v), &code); err != nil {
			return Invalid("Invalid OrderStatus code %q", v)
		}
	case string:
		if _, err := fmt.Sscan(v, &code); err != nil {
			return Invalid("Invalid OrderStatus code %q", v)
		}
	default:
		return Invalid("cannot scan %T into OrderStatus", src)
	}
	v, err := OrderStatusOf(int(code))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value implements driver.Valuer, writing the integer code.
func (s OrderStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, Invalid("Invalid OrderStatus code %d", int(s))
	}
	return int64(s.Code()), nil
}
