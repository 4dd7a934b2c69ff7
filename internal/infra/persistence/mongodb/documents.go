package mongodb

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/umithief/motovibe6/internal/domain/entity"
)

// Collection names.
const (
	colUsers      = "users"
	colProducts   = "products"
	colCategories = "categories"
	colSlides     = "slides"
	colOrders     = "orders"
	colTopics     = "forum_topics"
	colEvents     = "analytics_events"
	colVisits     = "visits"
	colLogs       = "activity_logs"
)

// IDs are stored as their canonical string form so documents stay readable in the shell.

type userDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"passwordHash"`
	IsAdmin      bool      `bson:"isAdmin"`
	Phone        string    `bson:"phone,omitempty"`
	Address      string    `bson:"address,omitempty"`
	JoinDate     time.Time `bson:"joinDate"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func toUserDoc(u *entity.User) *userDoc {
	return &userDoc{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		IsAdmin:      u.IsAdmin,
		Phone:        u.Phone,
		Address:      u.Address,
		JoinDate:     u.JoinDate,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d *userDoc) toDomain() *entity.User {
	return &entity.User{
		ID:           parseID(d.ID),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		Phone:        d.Phone,
		Address:      d.Address,
		JoinDate:     d.JoinDate,
		UpdatedAt:    d.UpdatedAt,
	}
}

type productDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	Category    string               `bson:"category"`
	Image       string               `bson:"image"`
	Images      []string             `bson:"images"`
	Rating      float64              `bson:"rating"`
	Features    []string             `bson:"features"`
	Stock       int                  `bson:"stock"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func toProductDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       toDecimal128(p.Price),
		Category:    string(p.Category),
		Image:       p.Image,
		Images:      nonNil(p.Images),
		Rating:      p.Rating,
		Features:    nonNil(p.Features),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d *productDoc) toDomain() *entity.Product {
	return &entity.Product{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Price:       fromDecimal128(d.Price),
		Category:    entity.ProductCategory(d.Category),
		Image:       d.Image,
		Images:      nonNil(d.Images),
		Rating:      d.Rating,
		Features:    nonNil(d.Features),
		Stock:       d.Stock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type categoryDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Type      string    `bson:"type"`
	Image     string    `bson:"image"`
	Desc      string    `bson:"desc"`
	Count     string    `bson:"count"`
	ClassName string    `bson:"className,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toCategoryDoc(c *entity.CategoryItem) *categoryDoc {
	return &categoryDoc{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		Image:     c.Image,
		Desc:      c.Desc,
		Count:     c.Count,
		ClassName: c.ClassName,
		CreatedAt: c.CreatedAt,
	}
}

func (d *categoryDoc) toDomain() *entity.CategoryItem {
	return &entity.CategoryItem{
		ID:        parseID(d.ID),
		Name:      d.Name,
		Type:      entity.ProductCategory(d.Type),
		Image:     d.Image,
		Desc:      d.Desc,
		Count:     d.Count,
		ClassName: d.ClassName,
		CreatedAt: d.CreatedAt,
	}
}

type slideDoc struct {
	ID        string    `bson:"_id"`
	Image     string    `bson:"image"`
	Title     string    `bson:"title"`
	Subtitle  string    `bson:"subtitle,omitempty"`
	CTA       string    `bson:"cta,omitempty"`
	Action    string    `bson:"action,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toSlideDoc(s *entity.Slide) *slideDoc {
	return &slideDoc{
		ID:        s.ID.String(),
		Image:     s.Image,
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		CTA:       s.CTA,
		Action:    string(s.Action),
		CreatedAt: s.CreatedAt,
	}
}

func (d *slideDoc) toDomain() *entity.Slide {
	return &entity.Slide{
		ID:        parseID(d.ID),
		Image:     d.Image,
		Title:     d.Title,
		Subtitle:  d.Subtitle,
		CTA:       d.CTA,
		Action:    entity.SlideAction(d.Action),
		CreatedAt: d.CreatedAt,
	}
}

type orderItemDoc struct {
	ProductID string               `bson:"productId"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
	Quantity  int                  `bson:"quantity"`
	Image     string               `bson:"image,omitempty"`
}

type orderDoc struct {
	ID        string               `bson:"_id"`
	Code      string               `bson:"code"`
	UserID    string               `bson:"userId"`
	Date      time.Time            `bson:"date"`
	Status    string               `bson:"status"`
	Total     primitive.Decimal128 `bson:"total"`
	Items     []orderItemDoc       `bson:"items"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

func toOrderDoc(o *entity.Order) *orderDoc {
	items := make([]orderItemDoc, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemDoc{
			ProductID: it.ProductID.String(),
			Name:      it.Name,
			Price:     toDecimal128(it.Price),
			Quantity:  it.Quantity,
			Image:     it.Image,
		}
	}

	return &orderDoc{
		ID:        o.ID.String(),
		Code:      o.Code,
		UserID:    o.UserID.String(),
		Date:      o.Date,
		Status:    string(o.Status),
		Total:     toDecimal128(o.Total),
		Items:     items,
		UpdatedAt: o.UpdatedAt,
	}
}

func (d *orderDoc) toDomain() *entity.Order {
	items := make([]entity.OrderItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = entity.OrderItem{
			ProductID: parseID(it.ProductID),
			Name:      it.Name,
			Price:     fromDecimal128(it.Price),
			Quantity:  it.Quantity,
			Image:     it.Image,
		}
	}

	return &entity.Order{
		ID:        parseID(d.ID),
		Code:      d.Code,
		UserID:    parseID(d.UserID),
		Date:      d.Date,
		Status:    entity.OrderStatus(d.Status),
		Total:     fromDecimal128(d.Total),
		Items:     items,
		UpdatedAt: d.UpdatedAt,
	}
}

type commentDoc struct {
	ID         string    `bson:"id"`
	AuthorID   string    `bson:"authorId"`
	AuthorName string    `bson:"authorName"`
	Content    string    `bson:"content"`
	Date       time.Time `bson:"date"`
	Likes      int       `bson:"likes"`
}

func toCommentDoc(c *entity.ForumComment) commentDoc {
	return commentDoc{
		ID:         c.ID.String(),
		AuthorID:   c.AuthorID.String(),
		AuthorName: c.AuthorName,
		Content:    c.Content,
		Date:       c.Date,
		Likes:      c.Likes,
	}
}

// topicDoc embeds its comments; they are only ever appended.
type topicDoc struct {
	ID         string       `bson:"_id"`
	AuthorID   string       `bson:"authorId"`
	AuthorName string       `bson:"authorName"`
	Title      string       `bson:"title"`
	Content    string       `bson:"content"`
	Category   string       `bson:"category"`
	Date       time.Time    `bson:"date"`
	Likes      int          `bson:"likes"`
	Views      int          `bson:"views"`
	Comments   []commentDoc `bson:"comments"`
	Tags       []string     `bson:"tags"`
}

func toTopicDoc(t *entity.ForumTopic) *topicDoc {
	comments := make([]commentDoc, len(t.Comments))
	for i := range t.Comments {
		comments[i] = toCommentDoc(&t.Comments[i])
	}

	return &topicDoc{
		ID:         t.ID.String(),
		AuthorID:   t.AuthorID.String(),
		AuthorName: t.AuthorName,
		Title:      t.Title,
		Content:    t.Content,
		Category:   string(t.Category),
		Date:       t.Date,
		Likes:      t.Likes,
		Views:      t.Views,
		Comments:   comments,
		Tags:       nonNil(t.Tags),
	}
}

func (d *topicDoc) toDomain() *entity.ForumTopic {
	comments := make([]entity.ForumComment, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = entity.ForumComment{
			ID:         parseID(c.ID),
			AuthorID:   parseID(c.AuthorID),
			AuthorName: c.AuthorName,
			Content:    c.Content,
			Date:       c.Date,
			Likes:      c.Likes,
		}
	}

	return &entity.ForumTopic{
		ID:         parseID(d.ID),
		AuthorID:   parseID(d.AuthorID),
		AuthorName: d.AuthorName,
		Title:      d.Title,
		Content:    d.Content,
		Category:   entity.ForumCategory(d.Category),
		Date:       d.Date,
		Likes:      d.Likes,
		Views:      d.Views,
		Comments:   comments,
		Tags:       nonNil(d.Tags),
	}
}

type eventDoc struct {
	ID          string    `bson:"_id"`
	Type        string    `bson:"type"`
	UserID      *string   `bson:"userId,omitempty"`
	UserName    string    `bson:"userName,omitempty"`
	ProductID   *string   `bson:"productId,omitempty"`
	ProductName string    `bson:"productName,omitempty"`
	Duration    int       `bson:"duration,omitempty"`
	Timestamp   time.Time `bson:"timestamp"`
}

func toEventDoc(e *entity.AnalyticsEvent) *eventDoc {
	return &eventDoc{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		UserID:      optionalID(e.UserID),
		UserName:    e.UserName,
		ProductID:   optionalID(e.ProductID),
		ProductName: e.ProductName,
		Duration:    e.Duration,
		Timestamp:   e.Timestamp,
	}
}

func (d *eventDoc) toDomain() *entity.AnalyticsEvent {
	return &entity.AnalyticsEvent{
		ID:          parseID(d.ID),
		Type:        entity.EventType(d.Type),
		UserID:      parseOptionalID(d.UserID),
		UserName:    d.UserName,
		ProductID:   parseOptionalID(d.ProductID),
		ProductName: d.ProductName,
		Duration:    d.Duration,
		Timestamp:   d.Timestamp,
	}
}

type logDoc struct {
	ID        string    `bson:"_id"`
	Type      string    `bson:"type"`
	Event     string    `bson:"event"`
	Details   string    `bson:"details"`
	Timestamp time.Time `bson:"timestamp"`
}

func toLogDoc(l *entity.ActivityLog) *logDoc {
	return &logDoc{
		ID:        l.ID.String(),
		Type:      string(l.Type),
		Event:     l.Event,
		Details:   l.Details,
		Timestamp: l.Timestamp,
	}
}

func (d *logDoc) toDomain() *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:        parseID(d.ID),
		Type:      entity.LogLevel(d.Type),
		Event:     d.Event,
		Details:   d.Details,
		Timestamp: d.Timestamp,
	}
}

// toDecimal128 cannot fail for values produced by decimal.Decimal.String.
func toDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.NewDecimal128(0, 0)
	}

	return v
}

func fromDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}

	return d
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()

	return &s
}

func parseOptionalID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := parseID(*s)

	return &id
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
