package mongo

import (
	"context"
	"testing"

	"crossbox/gym-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoBookingRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("count active", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "crossbox.bookings", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int64(20)}}))

		n, err := NewMongoBookingRepository(mt.DB).CountActive(context.Background(), "Yoga", "2026-06-01", "Morning")

		require.NoError(mt, err)
		assert.Equal(mt, int64(20), n)
	})

	mt.Run("create", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &domain.Booking{FullName: "Sam", ClassName: "Yoga", BookingDate: "2026-06-01", TimeSlot: "Morning", Status: domain.BookingWaitlist}
		id, err := NewMongoBookingRepository(mt.DB).Create(context.Background(), b)

		require.NoError(mt, err)
		assert.Equal(mt, b.ID, id)
		assert.Len(mt, id, 24)
	})
}
