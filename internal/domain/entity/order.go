package entity

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

// OrderStatusPending is assigned to orders submitted without a status.
const OrderStatusPending OrderStatus = "pending"

// Order is a purchase placed by the owner identified by Email.
type Order struct {
	ID          string      `json:"_id"`
	Email       string      `json:"email"`
	Name        string      `json:"name,omitempty"`
	ProductID   string      `json:"productId,omitempty"`
	Address     string      `json:"address,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	OrderStatus OrderStatus `json:"orderStatus"`
}
