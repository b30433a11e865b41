// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seeder populates the database with fake but plausible social data.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"likes", "comments", "follows", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")
	return nil
}

// Seed populates the database with test data.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return err
	}

	posts, err := s.seedPosts(users, opts.NumPosts)
	if err != nil {
		return err
	}

	if err := s.seedEngagement(users, posts); err != nil {
		return err
	}

	return s.seedFollows(users)
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(10),
			Location: gofakeit.City(),
			Website:  gofakeit.URL(),
			IsActive: true,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users (password: password123)", len(users))
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			Content:  gofakeit.Paragraph(1, 3, 8, " "),
			UserID:   author.ID,
			IsActive: true,
			// spread timestamps so the feed ordering is visible
			CreatedAt: time.Now().Add(-time.Duration(s.rng.Intn(90*24)) * time.Hour),
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("Created %d posts", len(posts))
	return posts, nil
}

func (s *Seeder) seedEngagement(users []*models.User, posts []*models.Post) error {
	var likes, comments int
	for _, post := range posts {
		for _, user := range users {
			if s.rng.Intn(100) < 15 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := s.db.Create(like).Error; err != nil {
					return fmt.Errorf("failed to create like: %w", err)
				}
				likes++
			}
			if s.rng.Intn(100) < 5 {
				comment := &models.Comment{
					Content: gofakeit.Sentence(12),
					UserID:  user.ID,
					PostID:  post.ID,
				}
				if err := s.db.Create(comment).Error; err != nil {
					return fmt.Errorf("failed to create comment: %w", err)
				}
				comments++
			}
		}
	}
	log.Printf("Created %d likes and %d comments", likes, comments)
	return nil
}

func (s *Seeder) seedFollows(users []*models.User) error {
	var follows int
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID {
				continue
			}
			if s.rng.Intn(100) < 10 {
				follow := &models.Follow{FollowerID: follower.ID, FollowingID: following.ID}
				if err := s.db.Create(follow).Error; err != nil {
					return fmt.Errorf("failed to create follow: %w", err)
				}
				follows++
			}
		}
	}
	log.Printf("Created %d follows", follows)
	return nil
}
