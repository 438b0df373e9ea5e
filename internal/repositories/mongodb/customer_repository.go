package mongodb

import (
	"context"
	"time"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
	"github.com/ArowuTest/engage-crm/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure CustomerRepository implements the interface
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository handles MongoDB operations for Customer
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		collection: db.Collection("customers"),
	}
}

// insertionOrder sorts by creation time, breaking ties on the ObjectID counter
var insertionOrder = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

// Create inserts a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now
	_, err := r.collection.InsertOne(ctx, customer)
	return translate(err, "customer", customer.ID.Hex())
}

// FindByID finds a customer by ID
func (r *CustomerRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		return nil, translate(err, "customer", id.Hex())
	}
	return &customer, nil
}

// List retrieves all customers in insertion order
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(insertionOrder))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []*models.Customer
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*models.Customer{}
	}
	return customers, nil
}

// Update sets the patched fields and returns the updated customer
func (r *CustomerRepository) Update(ctx context.Context, id primitive.ObjectID, patch models.CustomerPatch) (*models.Customer, error) {
	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.TotalOrders != nil {
		set["totalOrders"] = *patch.TotalOrders
	}
	if patch.TotalSpend != nil {
		set["totalSpend"] = *patch.TotalSpend
	}
	if patch.TotalVisits != nil {
		set["totalVisits"] = *patch.TotalVisits
	}

	var customer models.Customer
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&customer)
	if err != nil {
		return nil, translate(err, "customer", id.Hex())
	}
	return &customer, nil
}

// Delete deletes a customer by ID
func (r *CustomerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("customer", id.Hex())
	}
	return nil
}

// IncrementAggregates atomically increments the customer's counters
func (r *CustomerRepository) IncrementAggregates(ctx context.Context, id primitive.ObjectID, orders int, spend float64, visits int) (*models.Customer, error) {
	update := bson.M{
		"$inc": bson.M{"totalOrders": orders, "totalSpend": spend, "totalVisits": visits},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	var customer models.Customer
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&customer)
	if err != nil {
		return nil, translate(err, "customer", id.Hex())
	}
	return &customer, nil
}

// Count counts all customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
