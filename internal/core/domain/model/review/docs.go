// Package review contains the client review written once an order is done.
// A review is written at most once per order and never changes afterwards.
package review
