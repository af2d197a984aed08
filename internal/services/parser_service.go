package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"dayplanner/internal/gazetteer"
	"dayplanner/internal/models/request_models"
	"dayplanner/pkg/utils"
)

type ParserServiceInterface interface {
	Parse(ctx context.Context, req request_models.BuildItineraryRequest) (*request_models.StructuredRequest, error)
}

type ParserService struct {
	model    utils.StructuredModelClient
	attempts []utils.AttemptConfig
	location LocationServiceInterface
	cfg      *gazetteer.CityConfig
	validate *validator.Validate
}

// NewParserService builds the request parser. A nil model client disables
// the generative path entirely; the deterministic parser always remains.
func NewParserService(model utils.StructuredModelClient, attempts []utils.AttemptConfig, location LocationServiceInterface, cfg *gazetteer.CityConfig) ParserServiceInterface {
	return &ParserService{
		model:    model,
		attempts: attempts,
		location: location,
		cfg:      cfg,
		validate: validator.New(),
	}
}

type modelPlanOutput struct {
	Activities          []modelActivity `json:"activities" validate:"required,min=1,dive"`
	StartLocation       string          `json:"start_location"`
	InterpretationNotes string          `json:"interpretation_notes"`
}

type modelActivity struct {
	Description  string   `json:"description"`
	Location     string   `json:"location" validate:"required"`
	Time         string   `json:"time"`
	Category     string   `json:"category"`
	SearchTerm   string   `json:"search_term"`
	Keywords     []string `json:"keywords"`
	Requirements []string `json:"requirements"`
	Confidence   float64  `json:"confidence" validate:"gte=0,lte=1"`
}

func (p *ParserService) Parse(ctx context.Context, req request_models.BuildItineraryRequest) (*request_models.StructuredRequest, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, utils.ErrEmptyQuery
	}

	if p.model != nil {
		structured, err := p.parseWithModel(ctx, query)
		if err == nil {
			p.finalize(structured, req)
			return structured, nil
		}
		log.Printf("model interpretation failed, using deterministic parser: %v", err)
	}

	structured := p.parseDeterministic(query, time.Now())
	p.finalize(structured, req)
	return structured, nil
}

// finalize stamps request-level fields and enforces the ordering the
// scheduler expects: fixed times sorted, start location always present.
func (p *ParserService) finalize(structured *request_models.StructuredRequest, req request_models.BuildItineraryRequest) {
	structured.RawQuery = req.Query
	structured.Date = req.Date
	if req.StartTime != "" {
		structured.StartTime, _ = utils.NormalizeClockTime(req.StartTime)
	}

	sort.SliceStable(structured.FixedTimes, func(i, j int) bool {
		return structured.FixedTimes[i].Time < structured.FixedTimes[j].Time
	})

	if structured.StartLocation == "" {
		if len(structured.FixedTimes) > 0 {
			structured.StartLocation = structured.FixedTimes[0].Location
		} else {
			structured.StartLocation = p.cfg.DefaultStartFor(utils.CrowdBucket(time.Now()))
		}
	}
}

// ---------- generative path ----------

func (p *ParserService) parseWithModel(ctx context.Context, query string) (*request_models.StructuredRequest, error) {
	prompt := p.buildPrompt(query)

	var lastErr error
	for _, attempt := range p.attempts {
		raw, err := p.model.GenerateStructured(ctx, prompt, attempt)
		if err != nil {
			log.Printf("model attempt %q failed: %v", attempt.Label, err)
			lastErr = err
			continue
		}

		output, err := p.decodeModelOutput(raw)
		if err != nil {
			log.Printf("model attempt %q returned unusable output: %v", attempt.Label, err)
			lastErr = err
			continue
		}
		return p.fromModelOutput(output), nil
	}

	if lastErr == nil {
		lastErr = utils.ErrModelOutputInvalid
	}
	return nil, lastErr
}

func (p *ParserService) decodeModelOutput(raw string) (*modelPlanOutput, error) {
	var output modelPlanOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelOutputInvalid, err)
	}
	if err := p.validate.Struct(&output); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelOutputInvalid, err)
	}
	return &output, nil
}

func (p *ParserService) fromModelOutput(output *modelPlanOutput) *request_models.StructuredRequest {
	var entries []parsedEntry
	var warnings []string
	var requirements []string

	for _, act := range output.Activities {
		entry := parsedEntry{
			location:   p.location.Normalize(act.Location),
			category:   request_models.ParseActivityCategory(act.Category),
			searchTerm: strings.TrimSpace(act.SearchTerm),
			keywords:   act.Keywords,
		}
		if entry.category == request_models.CategoryActivity && act.Category == "" {
			entry.category = classifyActivity(act.Description)
		}
		if act.Time != "" {
			clock, ok := utils.NormalizeClockTime(act.Time)
			entry.clock = clock
			if !ok {
				warnings = append(warnings, fmt.Sprintf("could not read time %q, assuming %s", act.Time, utils.DefaultClockTime))
			}
		}
		requirements = append(requirements, act.Requirements...)
		entries = append(entries, entry)
	}

	structured := assembleRequest(dedupeEntries(entries), requirements, warnings)
	if output.StartLocation != "" {
		structured.StartLocation = p.location.Normalize(output.StartLocation)
	}
	return structured
}

func (p *ParserService) buildPrompt(query string) string {
	var prompt strings.Builder

	prompt.WriteString("Interpret a one-day plan request into structured activities.\n\n")
	prompt.WriteString(fmt.Sprintf("City: %s\n", p.cfg.Name))
	prompt.WriteString(fmt.Sprintf("Known areas: %s\n\n", strings.Join(p.cfg.AreaNames(), ", ")))
	prompt.WriteString(fmt.Sprintf("User Request: %s\n\n", query))

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	prompt.WriteString("1. Extract every activity the user mentions, in the order given\n")
	prompt.WriteString("2. Use 24-hour HH:MM times; leave time empty when the user gave none\n")
	prompt.WriteString("3. location is an area, street or landmark name only, never a sentence\n")
	prompt.WriteString("4. category must be one of: restaurant, cafe, bar, museum, gallery, park, activity, meeting, explore, walk, travel, rest\n")
	prompt.WriteString("5. requirements captures preferences like \"non-crowded\" or \"budget\"\n")
	prompt.WriteString("6. confidence is 0.0-1.0 for how sure you are of the interpretation\n")
	prompt.WriteString("7. Return ONLY valid JSON, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(`{
  "activities": [
    {
      "description": "lunch",
      "location": "Soho",
      "time": "13:00",
      "category": "restaurant",
      "search_term": "lunch restaurant",
      "keywords": ["italian"],
      "requirements": [],
      "confidence": 0.9
    }
  ],
  "start_location": "Soho",
  "interpretation_notes": "times taken literally"
}`)

	return prompt.String()
}

// ---------- deterministic path ----------

// parsedEntry is one candidate stop before fixed/flexible assembly.
type parsedEntry struct {
	location   string
	clock      string
	category   request_models.ActivityCategory
	searchTerm string
	keywords   []string
	minRating  float64
}

var (
	clauseSplitRe   = regexp.MustCompile(`(?i)\s*(?:,|;|\bthen\b|\bafter that\b|\bafterwards\b|\bfollowed by\b|\band\b)\s+`)
	startLocationRe = regexp.MustCompile(`(?i)\bstart(?:ing)?\s+(?:at|in|from)\s+(.+)`)
	prepositionRe   = regexp.MustCompile(`\b(?:in|at|near|around|along|to|from)\s+((?:[A-Z][\w']*)(?:[\s-](?:of\s+)?[A-Z][\w']*)*)`)
	minRatingRe     = regexp.MustCompile(`(?i)\b(good|great|best|top[- ]rated|highly[- ]rated)\b`)
)

// parseDeterministic is the no-network fallback: clause splitting, the
// time cascade, known-name and capitalized-phrase location extraction,
// and keyword classification. It depends only on its arguments.
func (p *ParserService) parseDeterministic(query string, now time.Time) *request_models.StructuredRequest {
	var entries []parsedEntry
	lastLocation := ""

	for _, clause := range splitClauses(query) {
		entry := parsedEntry{category: classifyActivity(clause)}

		if clock, ok := utils.NormalizeClockTime(clause); ok {
			entry.clock = clock
		}

		entry.location = p.extractLocation(clause)
		if entry.location == "" {
			entry.location = lastLocation
		} else {
			lastLocation = entry.location
		}
		if entry.location == "" {
			continue
		}
		if entry.clock == "" && entry.category == request_models.CategoryActivity && !p.isKnownName(entry.location) {
			continue
		}

		entry.searchTerm = searchTermFor(entry.category, clause)
		if minRatingRe.MatchString(clause) {
			entry.minRating = 4.0
		}
		entries = append(entries, entry)
	}

	for i := range entries {
		entries[i].location = p.location.Normalize(entries[i].location)
	}

	structured := assembleRequest(dedupeEntries(entries), extractRequirements(query), nil)
	if m := startLocationRe.FindStringSubmatch(query); m != nil {
		if loc := p.extractLocation(m[1]); loc != "" {
			structured.StartLocation = p.location.Normalize(loc)
		}
	}
	if structured.StartLocation == "" && len(structured.FixedTimes) == 0 {
		structured.StartLocation = p.cfg.DefaultStartFor(utils.CrowdBucket(now))
	}
	return structured
}

func splitClauses(query string) []string {
	var out []string
	for _, c := range clauseSplitRe.Split(query, -1) {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// extractLocation prefers the longest known gazetteer/landmark name in the
// clause, then falls back to a capitalized phrase after a preposition.
func (p *ParserService) extractLocation(clause string) string {
	if known := p.longestKnownName(clause); known != "" {
		return known
	}
	if m := prepositionRe.FindStringSubmatch(clause); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func (p *ParserService) longestKnownName(clause string) string {
	lower := strings.ToLower(clause)
	best := ""
	consider := func(name string) {
		if len(name) > len(best) && containsWord(lower, strings.ToLower(name)) {
			best = name
		}
	}

	for _, a := range p.cfg.Areas {
		consider(a.Name)
	}
	for _, l := range p.cfg.Landmarks {
		consider(l)
	}
	for _, h := range p.cfg.TransitHubs {
		consider(h)
	}
	for k := range p.cfg.ColloquialNames {
		consider(k)
	}
	for k := range p.cfg.Misspellings {
		consider(k)
	}
	return best
}

func (p *ParserService) isKnownName(name string) bool {
	return p.longestKnownName(name) != ""
}

// containsWord reports whether needle occurs in haystack on word
// boundaries, so "bar" does not match inside "embankment".
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(needle)
		beforeOK := i == 0 || !isWordChar(haystack[i-1])
		afterOK := end == len(haystack) || !isWordChar(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

var activityKeywords = []struct {
	words    []string
	category request_models.ActivityCategory
}{
	{[]string{"breakfast", "brunch", "lunch", "dinner", "supper", "eat", "meal", "restaurant", "restaurants", "steak", "pizza", "sushi", "burger", "tapas", "curry", "ramen"}, request_models.CategoryRestaurant},
	{[]string{"coffee", "cafe", "cafes", "espresso", "latte"}, request_models.CategoryCafe},
	{[]string{"bar", "bars", "pub", "pubs", "drinks", "cocktail", "cocktails", "beer", "wine", "nightcap"}, request_models.CategoryBar},
	{[]string{"museum", "museums", "exhibition", "exhibit"}, request_models.CategoryMuseum},
	{[]string{"gallery", "galleries"}, request_models.CategoryGallery},
	{[]string{"park", "parks", "garden", "gardens", "picnic"}, request_models.CategoryPark},
	{[]string{"meeting", "appointment", "interview"}, request_models.CategoryMeeting},
	{[]string{"explore", "wander", "browse"}, request_models.CategoryExplore},
	{[]string{"walk", "stroll"}, request_models.CategoryWalk},
	{[]string{"travel", "train", "flight"}, request_models.CategoryTravel},
	{[]string{"rest", "break", "relax", "nap"}, request_models.CategoryRest},
}

func classifyActivity(text string) request_models.ActivityCategory {
	lower := strings.ToLower(text)
	for _, group := range activityKeywords {
		for _, w := range group.words {
			if containsWord(lower, w) {
				return group.category
			}
		}
	}
	return request_models.CategoryActivity
}

var cuisineSearchTerms = map[string]string{
	"steak":  "steakhouse",
	"pizza":  "pizza restaurant",
	"sushi":  "sushi restaurant",
	"burger": "burger restaurant",
	"tapas":  "tapas restaurant",
	"curry":  "curry house",
	"ramen":  "ramen restaurant",
	"brunch": "brunch restaurant",
}

func searchTermFor(category request_models.ActivityCategory, clause string) string {
	if category != request_models.CategoryRestaurant {
		return ""
	}
	lower := strings.ToLower(clause)
	for word, term := range cuisineSearchTerms {
		if containsWord(lower, word) {
			return term
		}
	}
	return ""
}

var requirementPatterns = []struct {
	re          *regexp.Regexp
	requirement string
}{
	{regexp.MustCompile(`(?i)\b(?:non|not|less|avoid(?:ing)?)[\s-]*(?:too\s+)?crowd(?:s|ed)?\b|\bquiet\b`), "non-crowded"},
	{regexp.MustCompile(`(?i)\bcheap\b|\bbudget\b`), "budget"},
	{regexp.MustCompile(`(?i)\bfancy\b|\bupscale\b|\bfine dining\b`), "upscale"},
	{regexp.MustCompile(`(?i)\bromantic\b`), "romantic"},
	{regexp.MustCompile(`(?i)\boutdoors?\b|\boutside\b`), "outdoor"},
	{regexp.MustCompile(`(?i)\bindoors?\b|\binside\b`), "indoor"},
	{regexp.MustCompile(`(?i)\bmarkets?\b`), "markets"},
	{regexp.MustCompile(`(?i)\blive music\b`), "live music"},
	{regexp.MustCompile(`(?i)\bstreet art\b`), "street art"},
	{regexp.MustCompile(`(?i)\bvintage\b`), "vintage"},
	{regexp.MustCompile(`(?i)\bshopping\b`), "shopping"},
}

func extractRequirements(query string) []string {
	var out []string
	for _, p := range requirementPatterns {
		if p.re.MatchString(query) {
			out = append(out, p.requirement)
		}
	}
	return out
}

// ---------- shared assembly ----------

// dedupeEntries collapses entries that land on the same location. The
// richer category wins; a generic entry never displaces a specific one,
// though its time and filters are folded in. Two entries carrying
// distinct explicit times are separate commitments and both survive.
func dedupeEntries(entries []parsedEntry) []parsedEntry {
	var out []parsedEntry
	for _, e := range entries {
		merged := false
		for i := range out {
			if !strings.EqualFold(out[i].location, e.location) {
				continue
			}
			if out[i].clock != "" && e.clock != "" && out[i].clock != e.clock {
				continue
			}
			switch {
			case out[i].category == e.category:
				out[i] = mergeEntry(out[i], e)
			case e.category.MoreSpecificThan(out[i].category):
				out[i] = mergeEntry(e, out[i])
			case out[i].category.MoreSpecificThan(e.category):
				out[i] = mergeEntry(out[i], e)
			default:
				continue
			}
			merged = true
			break
		}
		if !merged {
			out = append(out, e)
		}
	}
	return out
}

func mergeEntry(primary, secondary parsedEntry) parsedEntry {
	if primary.clock == "" {
		primary.clock = secondary.clock
	}
	if primary.searchTerm == "" {
		primary.searchTerm = secondary.searchTerm
	}
	if len(primary.keywords) == 0 {
		primary.keywords = secondary.keywords
	}
	if secondary.minRating > primary.minRating {
		primary.minRating = secondary.minRating
	}
	return primary
}

func assembleRequest(entries []parsedEntry, requirements, warnings []string) *request_models.StructuredRequest {
	structured := &request_models.StructuredRequest{
		Preferences: request_models.Preferences{Requirements: dedupeStrings(requirements)},
		Warnings:    warnings,
	}
	for _, r := range structured.Preferences.Requirements {
		if r == "non-crowded" {
			structured.Preferences.Type = "non-crowded"
			break
		}
	}

	for _, e := range entries {
		if e.clock != "" {
			structured.FixedTimes = append(structured.FixedTimes, request_models.FixedTimeEntry{
				Location:   e.location,
				Time:       e.clock,
				Category:   e.category,
				SearchTerm: e.searchTerm,
				Keywords:   e.keywords,
				MinRating:  e.minRating,
			})
			continue
		}
		structured.Destinations = append(structured.Destinations, e.location)
	}
	return structured
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
