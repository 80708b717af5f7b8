// Команда seed генерирует синтетические датасеты для локальной разработки:
// пользователей со случайными предпочтениями из тегов каталога и журнал
// взаимодействий, вероятности исходов которого зависят от профиля пользователя.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/discovery-api/internal/config"
	"github.com/yourusername/discovery-api/internal/domain/entity"
	pgRepo "github.com/yourusername/discovery-api/internal/repository/postgres"
	"github.com/yourusername/discovery-api/internal/service/adaptive"
	"github.com/yourusername/discovery-api/pkg/database"
)

// outcomeWeights — вероятности исходов (correct, incorrect, skipped)
// для одной сложности
type outcomeWeights struct {
	correct float64
	skipped float64
}

// profileWeights — вероятности исходов по сложностям для одного профиля.
// Эксперт почти всегда отвечает верно на easy и уверенно на hard,
// новичок чаще ошибается и пропускает сложные вопросы.
var profileWeights = map[entity.SkillTier]map[entity.Difficulty]outcomeWeights{
	entity.TierBeginner: {
		entity.DifficultyEasy:   {correct: 0.55, skipped: 0.10},
		entity.DifficultyMedium: {correct: 0.30, skipped: 0.20},
		entity.DifficultyHard:   {correct: 0.10, skipped: 0.40},
	},
	entity.TierIntermediate: {
		entity.DifficultyEasy:   {correct: 0.80, skipped: 0.05},
		entity.DifficultyMedium: {correct: 0.60, skipped: 0.10},
		entity.DifficultyHard:   {correct: 0.35, skipped: 0.20},
	},
	entity.TierExpert: {
		entity.DifficultyEasy:   {correct: 0.95, skipped: 0.01},
		entity.DifficultyMedium: {correct: 0.85, skipped: 0.03},
		entity.DifficultyHard:   {correct: 0.70, skipped: 0.05},
	},
}

func main() {
	var (
		numUsers    = flag.Int("users", 100, "количество синтетических пользователей")
		perUser     = flag.Int("interactions", 10, "количество взаимодействий на пользователя")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "seed генератора случайных чисел")
		scoring     = flag.String("scoring", adaptive.ScoringTraining, "режим скоринга взаимодействий (training|simple)")
		startOffset = flag.Duration("history-span", 7*24*time.Hour, "глубина истории взаимодействий")
	)
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	learnerRepo := pgRepo.NewLearnerRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	interactionRepo := pgRepo.NewInteractionRepo(db)

	ctx := context.Background()
	rnd := rand.New(rand.NewSource(*seed))

	questions, err := questionRepo.List(ctx)
	if err != nil {
		log.Printf("Failed to load question catalog: %v", err)
		os.Exit(1)
	}
	if len(questions) == 0 {
		log.Println("Каталог вопросов пуст: сначала импортируйте вопросы через /api/admin/datasets/questions/import")
		os.Exit(1)
	}

	tags := uniqueTags(questions)
	if len(tags) < 2 {
		log.Printf("В каталоге слишком мало уникальных тегов (%d), нечего выбирать в предпочтения", len(tags))
		os.Exit(1)
	}
	log.Printf("[Seed] Каталог: %d вопросов, %d уникальных тегов", len(questions), len(tags))

	// Генерируем пользователей: случайное подмножество тегов каталога
	// в предпочтениях и случайный уровень 1..3.
	learners := make([]entity.Learner, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		learners = append(learners, entity.Learner{
			UserID:      fmt.Sprintf("%d", i+1),
			Preferences: strings.Join(sampleTags(rnd, tags, 2+rnd.Intn(4)), ", "),
			UserLevel:   1 + rnd.Intn(3),
		})
	}
	if err := learnerRepo.UpsertBatch(ctx, learners); err != nil {
		log.Printf("Failed to seed learners: %v", err)
		os.Exit(1)
	}
	log.Printf("[Seed] Записано пользователей: %d", len(learners))

	// Генерируем взаимодействия: исход каждого события разыгрывается
	// по вероятностям, зависящим от профиля пользователя и сложности вопроса.
	start := time.Now().Add(-*startOffset)
	total := 0
	for _, learner := range learners {
		profile := entity.TierFromLevel(learner.UserLevel)
		for j := 0; j < *perUser; j++ {
			q := questions[rnd.Intn(len(questions))]
			outcome := drawOutcome(rnd, profile, q.Difficulty)
			ts := start.Add(time.Duration(rnd.Intn(int(*startOffset / time.Second))) * time.Second)

			record := &entity.Interaction{
				ID:               uuid.NewString(),
				UserID:           learner.UserID,
				ItemID:           q.ItemID,
				EventType:        outcome,
				Timestamp:        ts.Unix(),
				Difficulty:       q.Difficulty,
				Topic:            q.Tags,
				UserProfile:      profile,
				InteractionScore: adaptive.Score(*scoring, outcome),
			}
			if err := interactionRepo.Append(ctx, record); err != nil {
				log.Printf("Failed to append interaction for user %s: %v", learner.UserID, err)
				os.Exit(1)
			}
			total++
		}
	}
	log.Printf("[Seed] Записано взаимодействий: %d", total)
}

// uniqueTags собирает уникальные теги из свободного текста тегов каталога
func uniqueTags(questions []entity.Question) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, q := range questions {
		for _, tag := range strings.Split(q.Tags, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	return tags
}

// sampleTags возвращает n случайных тегов без повторов
func sampleTags(rnd *rand.Rand, tags []string, n int) []string {
	if n > len(tags) {
		n = len(tags)
	}
	idx := rnd.Perm(len(tags))[:n]
	picked := make([]string, 0, n)
	for _, i := range idx {
		picked = append(picked, tags[i])
	}
	return picked
}

// drawOutcome разыгрывает исход события по вероятностям профиля
func drawOutcome(rnd *rand.Rand, profile entity.SkillTier, difficulty entity.Difficulty) entity.Outcome {
	weights, ok := profileWeights[profile][difficulty]
	if !ok {
		weights = profileWeights[entity.TierBeginner][entity.DifficultyEasy]
	}
	r := rnd.Float64()
	switch {
	case r < weights.correct:
		return entity.OutcomeCorrect
	case r < weights.correct+weights.skipped:
		return entity.OutcomeSkipped
	default:
		return entity.OutcomeIncorrect
	}
}
