package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowgen/backend/internal/domain"
)

// faqQuestionCount is how many questions make it onto the FAQ page.
const faqQuestionCount = 5

// answerMaxTokens caps generated answer length.
const answerMaxTokens = 200

var cacheKeyCleanRegex = regexp.MustCompile(`[^a-z0-9 ]`)

// FAQService assembles FAQ pages. Answers are rule-based where a keyword
// rule applies; the text generator is a fallback for everything else, and
// generated answers are cached so repeated workflow runs do not re-query
// the model.
type FAQService struct {
	generator domain.TextGenerator
	cache     domain.CacheRepository
	cacheTTL  time.Duration
}

// NewFAQService creates a new FAQ service. generator may be nil, in which
// case every non-rule question gets a deterministic fallback answer.
func NewFAQService(generator domain.TextGenerator, cache domain.CacheRepository, cacheTTL time.Duration) *FAQService {
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	return &FAQService{
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// BuildPage selects the top questions, answers each one, and assembles the
// FAQ payload.
func (s *FAQService) BuildPage(ctx context.Context, questions []domain.Question, product domain.ProductRecord) *domain.FAQPage {
	selected := selectTopQuestions(questions, faqQuestionCount)

	items := make([]domain.FAQItem, 0, len(selected))
	for _, q := range selected {
		items = append(items, domain.FAQItem{
			Question: q.Question,
			Answer:   s.answer(ctx, q, product),
			Category: q.Category,
		})
	}

	return &domain.FAQPage{
		PageID:         uuid.NewString(),
		PageType:       "FAQ",
		Title:          "Frequently Asked Questions",
		ProductName:    product.Name,
		Questions:      items,
		TotalQuestions: len(items),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// answer tries the keyword rules first, then the cache, then the text
// generator. Generation failures never fail the page; they degrade to a
// deterministic fallback built from the product record.
func (s *FAQService) answer(ctx context.Context, q domain.Question, product domain.ProductRecord) string {
	if answer := ruleBasedAnswer(q.Question, product); answer != "" {
		return answer
	}

	cacheKey := answerCacheKey(product.Name, q.Question)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached
		}
	}

	if s.generator != nil {
		answer, err := s.generator.Generate(ctx, answerPrompt(q.Question, product), answerMaxTokens)
		if err != nil {
			log.Printf("[FAQ] generation failed for %q: %v", q.Question, err)
		} else if answer = strings.TrimSpace(answer); answer != "" {
			if s.cache != nil {
				if err := s.cache.Set(ctx, cacheKey, answer, s.cacheTTL); err != nil {
					log.Printf("[FAQ] failed to cache answer: %v", err)
				}
			}
			return answer
		}
	}

	return fallbackAnswer(product)
}

// ruleBasedAnswer answers common question shapes from the product record
// alone. Returns "" when no keyword rule applies.
func ruleBasedAnswer(question string, product domain.ProductRecord) string {
	q := strings.ToLower(question)
	name := valueOr(product.Name, "This product")

	switch {
	case strings.Contains(q, "price"):
		return fmt.Sprintf("The price of %s is %s.", name, valueOr(product.Price, "available on request"))
	case strings.Contains(q, "side effect"):
		return fmt.Sprintf("The known side effects are: %s.", valueOr(product.SideEffects, "please consult the product label"))
	case strings.Contains(q, "how to use"), strings.Contains(q, "how do i apply"):
		return fmt.Sprintf("Usage instructions: %s.", valueOr(product.HowToUse, "follow product instructions"))
	case strings.Contains(q, "skin type"):
		return fmt.Sprintf("%s is suitable for %s skin.", name, valueOr(product.SkinType, "various"))
	case strings.Contains(q, "ingredients"):
		return fmt.Sprintf("The key ingredients in %s are: %s.", name, valueOr(product.KeyIngredients, "listed on packaging"))
	case strings.Contains(q, "benefits"), strings.Contains(q, "what does it do"):
		return fmt.Sprintf("%s provides the following benefits: %s.", name, valueOr(product.Benefits, "multiple skin benefits"))
	case strings.Contains(q, "concentration"):
		return fmt.Sprintf("%s contains %s.", name, valueOr(product.Concentration, "active ingredients"))
	}

	return ""
}

// answerPrompt builds the generation prompt, restricting the model to the
// facts present in the product record.
func answerPrompt(question string, product domain.ProductRecord) string {
	var context strings.Builder
	appendFact := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&context, "%s: %s\n", label, value)
		}
	}
	appendFact("Product Name", product.Name)
	appendFact("Concentration", product.Concentration)
	appendFact("Suitable for", product.SkinType)
	appendFact("Key Ingredients", product.KeyIngredients)
	appendFact("Benefits", product.Benefits)
	appendFact("How to Use", product.HowToUse)
	appendFact("Side Effects", product.SideEffects)
	appendFact("Price", product.Price)

	return fmt.Sprintf(`Answer this customer question about the product using ONLY the provided information:

Product Information:
%s
Customer Question: %s

Provide a clear, helpful answer in 2-3 sentences. Be informative but concise. Use only the facts provided above.

Answer:`, context.String(), question)
}

// fallbackAnswer is the deterministic last resort when no rule applies and
// generation is unavailable or failed.
func fallbackAnswer(product domain.ProductRecord) string {
	name := valueOr(product.Name, "This product")
	if product.Benefits != "" {
		return fmt.Sprintf("%s is designed for %s. Please refer to the product label for further details.",
			name, strings.ToLower(product.Benefits))
	}
	return fmt.Sprintf("Please refer to the %s product label for further details.", name)
}

// selectTopQuestions picks count questions with category diversity: first
// one question per category in order, then remaining slots in input order.
func selectTopQuestions(questions []domain.Question, count int) []domain.Question {
	selected := make([]domain.Question, 0, count)
	seenCategories := make(map[string]bool)
	picked := make(map[int]bool)

	for i, q := range questions {
		if len(selected) >= count {
			break
		}
		if !seenCategories[q.Category] {
			selected = append(selected, q)
			seenCategories[q.Category] = true
			picked[i] = true
		}
	}

	for i, q := range questions {
		if len(selected) >= count {
			break
		}
		if !picked[i] {
			selected = append(selected, q)
			picked[i] = true
		}
	}

	return selected
}

// answerCacheKey normalizes product name and question into a cache key.
func answerCacheKey(productName, question string) string {
	normalize := func(s string) string {
		s = strings.ToLower(s)
		s = cacheKeyCleanRegex.ReplaceAllString(s, "")
		return strings.Join(strings.Fields(s), "-")
	}
	return fmt.Sprintf("answer:%s:%s", normalize(productName), normalize(question))
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
