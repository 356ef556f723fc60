package cart

import (
	"math/rand"
	"testing"

	"foodcart/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, price int) domain.CartItem {
	return domain.CartItem{ID: id, Name: "item", Price: price, RestaurantID: 1, RestaurantName: "Spice Garden 1"}
}

func assertConsistent(t *testing.T, s State) {
	t.Helper()
	var amount, count int
	for _, line := range s.Items {
		require.GreaterOrEqual(t, line.Quantity, 1, "line %d has a non-positive quantity", line.ID)
		amount += line.Price * line.Quantity
		count += line.Quantity
	}
	assert.Equal(t, amount, s.TotalAmount)
	assert.Equal(t, count, s.TotalItems)
}

func TestAdd_SameItemTwice(t *testing.T) {
	s := Empty().Add(item(1, 100))
	assert.Equal(t, 100, s.TotalAmount)
	assert.Equal(t, 1, s.TotalItems)

	s = s.Add(item(1, 100))
	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, 200, s.TotalAmount)
}

func TestAdd_NegativePriceKeepsTotalsInSync(t *testing.T) {
	s := Empty().Add(item(1, -50))
	assert.Equal(t, -50, s.TotalAmount)
	assertConsistent(t, s)

	s = Empty().Add(item(1, 100)).Add(item(2, -150))
	assert.Equal(t, -50, s.TotalAmount)
	assertConsistent(t, s)

	s = s.Remove(1)
	assert.Equal(t, -150, s.TotalAmount)
	assertConsistent(t, s)

	s = s.UpdateQuantity(2, 2)
	assert.Equal(t, -300, s.TotalAmount)
	assertConsistent(t, s)
}

func TestAdd_IgnoresIncomingQuantity(t *testing.T) {
	in := item(3, 50)
	in.Quantity = 9
	s := Empty().Add(in)
	assert.Equal(t, 1, s.Items[0].Quantity)
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	s := Empty().Add(item(2, 10)).Add(item(1, 20)).Add(item(2, 10))
	assert.Equal(t, 2, s.Items[0].ID)
	assert.Equal(t, 1, s.Items[1].ID)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	before := Empty().Add(item(1, 100)).Add(item(2, 60))
	_ = before.Add(item(1, 100))
	_ = before.UpdateQuantity(2, 7)
	_ = before.Remove(1)

	assert.Equal(t, 1, before.Items[0].Quantity)
	assert.Equal(t, 1, before.Items[1].Quantity)
	assert.Equal(t, 160, before.TotalAmount)
}

func TestRemove(t *testing.T) {
	s := Empty().Add(item(1, 100)).Add(item(1, 100)).Add(item(2, 30))

	tests := []struct {
		name       string
		id         int
		wantAmount int
		wantItems  int
	}{
		{name: "removes the whole line", id: 1, wantAmount: 30, wantItems: 1},
		{name: "unknown id is a no-op", id: 99, wantAmount: 230, wantItems: 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := s.Remove(testCase.id)
			assert.Equal(t, testCase.wantAmount, got.TotalAmount)
			assert.Equal(t, testCase.wantItems, got.TotalItems)
			assertConsistent(t, got)
		})
	}
}

func TestUpdateQuantity_NonPositiveEqualsRemove(t *testing.T) {
	s := Empty().Add(item(1, 100)).Add(item(2, 45)).Add(item(2, 45))
	removed := s.Remove(2)

	assert.Equal(t, removed, s.UpdateQuantity(2, 0))
	assert.Equal(t, removed, s.UpdateQuantity(2, -5))
}

func TestUpdateQuantity(t *testing.T) {
	s := Empty().Add(item(1, 100)).Add(item(2, 45))

	got := s.UpdateQuantity(2, 4)
	assert.Equal(t, 4, got.Items[1].Quantity)
	assert.Equal(t, 280, got.TotalAmount)
	assert.Equal(t, 5, got.TotalItems)

	assert.Equal(t, s, s.UpdateQuantity(42, 3), "unknown id is a no-op")
}

func TestClear(t *testing.T) {
	s := Empty().Add(item(1, 100)).Add(item(2, 45)).UpdateQuantity(2, 9)
	cleared := s.Clear()

	assert.Equal(t, []domain.CartItem{}, cleared.Items)
	assert.Zero(t, cleared.TotalItems)
	assert.Zero(t, cleared.TotalAmount)
	assert.Equal(t, Empty(), State{}.Clear())
}

func TestRandomSequencesKeepTotalsConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	prices := []int{30, 45, 99, 180, 320}

	for run := 0; run < 50; run++ {
		s := Empty()
		for step := 0; step < 200; step++ {
			id := rng.Intn(len(prices))
			switch rng.Intn(4) {
			case 0, 1:
				s = s.Add(item(id, prices[id]))
			case 2:
				s = s.Remove(id)
			case 3:
				s = s.UpdateQuantity(id, rng.Intn(8)-3)
			}
			assertConsistent(t, s)
		}
	}
}

func TestRestaurantIDs(t *testing.T) {
	a := item(1, 10)
	b := item(2000, 10)
	b.RestaurantID = 2
	s := Empty().Add(a).Add(b).Add(a)
	assert.Equal(t, []int{1, 2}, s.RestaurantIDs())
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Bill
	}{
		{name: "empty cart pays nothing", state: Empty(), want: Bill{}},
		{
			name:  "subtotal 500",
			state: Empty().Add(item(1, 250)).Add(item(1, 250)),
			want:  Bill{Subtotal: 500, DeliveryFee: 40, GST: 25, Total: 565},
		},
		{
			name:  "gst rounds half up",
			state: Empty().Add(item(1, 90)),
			want:  Bill{Subtotal: 90, DeliveryFee: 40, GST: 5, Total: 135},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Price(testCase.state))
		})
	}
}

func TestReduce(t *testing.T) {
	s, err := Reduce(Empty(), Action{Type: ActionAdd, Item: item(5, 70)})
	require.NoError(t, err)
	s, err = Reduce(s, Action{Type: ActionUpdateQuantity, ItemID: 5, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 210, s.TotalAmount)

	s, err = Reduce(s, Action{Type: ActionRemove, ItemID: 5})
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	_, err = Reduce(s, Action{Type: "CHECKOUT"})
	assert.Error(t, err)
}
