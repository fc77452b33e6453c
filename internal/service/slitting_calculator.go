package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/domain/model"
	"github.com/Adela-Cal/Misty-Manufacturing-sub002/internal/service/cache"
)

// DefaultMaxPatterns is the default ceiling on the number of patterns the
// enumerator may generate for a single request. The search space of
// combinations-with-repetition explodes for small widths against a wide
// roll (a 1mm width over a 3000mm deckle), so enumeration is capped rather
// than allowed to hang.
const DefaultMaxPatterns = 10000

// ErrSearchSpaceTooLarge is returned when enumeration would exceed the
// configured pattern ceiling. Callers should narrow the input (fewer desired
// widths, a larger minimum width) rather than retry.
var ErrSearchSpaceTooLarge = errors.New("pattern search space exceeds configured ceiling")

// InvalidConfigurationError reports a request that cannot produce any valid
// calculation: non-positive usable width, no usable slit widths, or a
// non-positive roll quantity.
type InvalidConfigurationError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// IsInvalidConfiguration reports whether err is an InvalidConfigurationError.
func IsInvalidConfiguration(err error) bool {
	var ice *InvalidConfigurationError
	return errors.As(err, &ice)
}

// PermutationCalculator defines the interface for slitting pattern
// calculation operations. One invocation is a stateless, CPU-bound pure
// function of its inputs; concurrent invocations need no coordination.
type PermutationCalculator interface {
	Calculate(material model.Material, req model.PermutationRequest, calculatedBy string) (*model.CalculationResult, error)
	// InvalidateCache clears the calculation cache (useful when materials change).
	InvalidateCache()
}

// Option configures a SlittingCalculatorService.
type Option func(*SlittingCalculatorService)

// SlittingCalculatorService implements PermutationCalculator.
//
// The pipeline runs in four steps: enumerate every feasible width multiset,
// annotate each with waste and yield and rank them, attach the GSM-based
// cost breakdown, then assemble the response with rounding applied only at
// that final boundary.
type SlittingCalculatorService struct {
	maxPatterns int
	cache       cache.Cache
}

// NewSlittingCalculatorService creates a new SlittingCalculatorService with
// the given options.
func NewSlittingCalculatorService(opts ...Option) *SlittingCalculatorService {
	s := &SlittingCalculatorService{
		maxPatterns: DefaultMaxPatterns,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxPatterns sets the pattern enumeration ceiling.
func WithMaxPatterns(maxPatterns int) Option {
	return func(s *SlittingCalculatorService) {
		if maxPatterns > 0 {
			s.maxPatterns = maxPatterns
		}
	}
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *SlittingCalculatorService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *SlittingCalculatorService) {
		s.cache = c
	}
}

// Calculate enumerates every feasible slitting pattern for the material and
// request, ranks them by yield and attaches the full cost breakdown.
//
// Zero feasible patterns is not an error: the result carries an empty
// permutation list and a best yield of 0.
func (s *SlittingCalculatorService) Calculate(material model.Material, req model.PermutationRequest, calculatedBy string) (*model.CalculationResult, error) {
	if err := validateInputs(material, req); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey(material, req)); ok {
			// Identity and timestamp are per-invocation, not part of the
			// deterministic calculation. The clone keeps callers from
			// mutating the stored entry through the shared pattern slice.
			result := cached.Clone()
			result.CalculatedAt = time.Now().UTC()
			result.CalculatedBy = calculatedBy
			return &result, nil
		}
	}

	usableWidth := material.MasterWidthMM - req.WasteAllowanceMM
	widths := usableWidths(req.DesiredSlitWidths, usableWidth)

	combos, err := s.enumerate(widths, usableWidth)
	if err != nil {
		return nil, err
	}

	patterns := evaluatePatterns(combos, usableWidth, material.MasterWidthMM)
	rankPatterns(patterns)
	for i := range patterns {
		costPattern(&patterns[i], material)
	}

	result := assembleResult(material, req, patterns)

	if s.cache != nil {
		// Store a clone: the caller owns the returned result and may
		// mutate it, and the stored entry must not see that.
		s.cache.Set(cacheKey(material, req), result.Clone())
	}

	result.CalculatedAt = time.Now().UTC()
	result.CalculatedBy = calculatedBy
	return result, nil
}

// InvalidateCache clears the calculation cache.
func (s *SlittingCalculatorService) InvalidateCache() {
	if s.cache != nil {
		if cacheWithClear, ok := s.cache.(interface{ Clear() }); ok {
			cacheWithClear.Clear()
		}
	}
}

// validateInputs checks the request against the material before any
// enumeration begins.
func validateInputs(material model.Material, req model.PermutationRequest) error {
	if material.MasterWidthMM <= 0 {
		return &InvalidConfigurationError{Reason: "material master width must be positive"}
	}
	if req.WasteAllowanceMM < 0 {
		return &InvalidConfigurationError{Reason: "waste allowance must not be negative"}
	}
	if req.WasteAllowanceMM >= material.MasterWidthMM {
		return &InvalidConfigurationError{
			Reason: fmt.Sprintf("waste allowance %smm leaves no usable width on a %smm roll",
				model.FormatWidth(req.WasteAllowanceMM), model.FormatWidth(material.MasterWidthMM)),
		}
	}
	if len(req.DesiredSlitWidths) == 0 {
		return &InvalidConfigurationError{Reason: "at least one desired slit width is required"}
	}
	for _, w := range req.DesiredSlitWidths {
		if w <= 0 {
			return &InvalidConfigurationError{
				Reason: fmt.Sprintf("slit width %smm must be positive", model.FormatWidth(w)),
			}
		}
	}
	if req.QuantityMasterRolls <= 0 {
		return &InvalidConfigurationError{Reason: "quantity of master rolls must be positive"}
	}
	return nil
}

// usableWidths deduplicates the desired widths, drops any width wider than
// the usable roll width and returns the rest sorted descending. An empty
// result is valid: it simply yields zero patterns.
func usableWidths(desired []float64, usableWidth float64) []float64 {
	seen := make(map[float64]struct{}, len(desired))
	widths := make([]float64, 0, len(desired))
	for _, w := range desired {
		if w > usableWidth {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		widths = append(widths, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(widths)))
	return widths
}

// enumerate generates every distinct maximal combination-with-repetition of
// widths whose sum fits within usableWidth.
//
// The recursion walks the widths in descending order and never revisits a
// wider width once it has advanced, so each multiset is produced exactly
// once, already in canonical descending order. A combination is emitted only
// at a terminal state, where no remaining width fits the leftover; partial
// combinations that could still take another slit are not patterns by
// themselves. Because the widths are descending, the slice from start always
// contains the globally smallest width, so "nothing from start fits" means
// nothing fits at all.
func (s *SlittingCalculatorService) enumerate(widths []float64, usableWidth float64) ([][]float64, error) {
	var combos [][]float64
	current := make([]float64, 0, 16)

	var visit func(start int, remaining float64) error
	visit = func(start int, remaining float64) error {
		extended := false
		for i := start; i < len(widths); i++ {
			w := widths[i]
			if w > remaining {
				continue
			}
			extended = true
			current = append(current, w)
			err := visit(i, remaining-w)
			current = current[:len(current)-1]
			if err != nil {
				return err
			}
		}
		if !extended && len(current) > 0 {
			if len(combos) >= s.maxPatterns {
				return ErrSearchSpaceTooLarge
			}
			combos = append(combos, append([]float64(nil), current...))
		}
		return nil
	}

	if err := visit(0, usableWidth); err != nil {
		return nil, err
	}
	return combos, nil
}

// evaluatePatterns annotates each width combination with its used width,
// waste and yield. The yield denominator is the full master width: the trim
// allowance is an unavoidable loss and must depress the achievable yield.
func evaluatePatterns(combos [][]float64, usableWidth, masterWidth float64) []model.Pattern {
	patterns := make([]model.Pattern, 0, len(combos))
	for _, widths := range combos {
		var used float64
		for _, w := range widths {
			used += w
		}
		patterns = append(patterns, model.Pattern{
			Widths:             widths,
			Description:        model.DescribeWidths(widths),
			UsedWidthMM:        used,
			WasteMM:            usableWidth - used,
			YieldPercentage:    used / masterWidth * 100,
			TotalFinishedRolls: len(widths),
		})
	}
	return patterns
}

// rankPatterns sorts patterns by descending yield, breaking ties by
// descending finished-roll count and then by lexicographic comparison of
// the canonical descending width lists. The order is total, so identical
// input always produces identical output.
func rankPatterns(patterns []model.Pattern) {
	sort.SliceStable(patterns, func(i, j int) bool {
		a, b := patterns[i], patterns[j]
		if a.UsedWidthMM != b.UsedWidthMM {
			return a.UsedWidthMM > b.UsedWidthMM
		}
		if a.TotalFinishedRolls != b.TotalFinishedRolls {
			return a.TotalFinishedRolls > b.TotalFinishedRolls
		}
		return widthsLexGreater(a.Widths, b.Widths)
	})
}

// widthsLexGreater compares two canonical descending width lists
// lexicographically.
func widthsLexGreater(a, b []float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return len(a) > len(b)
}

// costPattern attaches the slit-level cost breakdown. Pattern totals are
// derived later at assembly, from the rounded per-slit figures.
//
// The areal-density conversion is grams-per-square-metre to
// linear-metres-per-tonne to cost-per-metre:
//
//	cost_per_metre = price_per_tonne * gsm * width_m / 1_000_000
//
// When GSM is unknown (zero) there is no areal basis for a per-metre cost,
// so the price per tonne is applied directly as a per-metre figure instead
// of failing the request.
func costPattern(p *model.Pattern, material model.Material) {
	details := make([]model.SlitDetail, 0, len(p.Widths))

	i := 0
	for i < len(p.Widths) {
		w := p.Widths[i]
		count := 0
		for i < len(p.Widths) && p.Widths[i] == w {
			count++
			i++
		}
		details = append(details, costSlit(w, count, material))
	}

	p.SlitDetails = details
}

// costSlit computes the weight and cost of one slit of the given width.
func costSlit(widthMM float64, count int, material model.Material) model.SlitDetail {
	widthM := widthMM / 1000
	linearMeters := material.TotalLinearMeters

	// Area (m²) × GSM gives grams; /1000 gives kilograms.
	weightKg := widthM * linearMeters * material.GSM / 1000

	var costAUD float64
	if material.GSM > 0 && widthM > 0 {
		// kg → tonnes, then price per tonne.
		costAUD = weightKg / 1000 * material.PricePerTonneAUD
	} else {
		// Fallback: no areal-density basis, treat the tonne price as a
		// per-metre rate.
		costAUD = material.PricePerTonneAUD * linearMeters
	}

	return model.SlitDetail{
		SlitWidthMM:     widthMM,
		Count:           count,
		LinearMeters:    linearMeters,
		WeightPerSlitKg: weightKg,
		CostPerSlitAUD:  costAUD,
	}
}

// assembleResult composes the final response contract. Monetary and
// percentage fields are rounded to two decimal places here and nowhere
// earlier. Pattern totals are summed from the already-rounded per-slit
// costs, so the published breakdown always reconciles: a reader multiplying
// count by cost_per_slit_aud arrives at total_pattern_cost_aud exactly.
func assembleResult(material model.Material, req model.PermutationRequest, patterns []model.Pattern) *model.CalculationResult {
	for i := range patterns {
		p := &patterns[i]
		p.YieldPercentage = round2(p.YieldPercentage)

		var patternCost float64
		for j := range p.SlitDetails {
			p.SlitDetails[j].CostPerSlitAUD = round2(p.SlitDetails[j].CostPerSlitAUD)
			patternCost += float64(p.SlitDetails[j].Count) * p.SlitDetails[j].CostPerSlitAUD
		}
		p.TotalPatternCostAUD = round2(patternCost)
		p.TotalCostAllRollsAUD = round2(patternCost * float64(req.QuantityMasterRolls))
	}

	var bestYield float64
	if len(patterns) > 0 {
		bestYield = patterns[0].YieldPercentage
	}

	return &model.CalculationResult{
		CalculationType:        model.CalculationTypeMaterialPermutation,
		MaterialInfo:           material.Info(),
		InputParameters:        req.Echo(),
		Permutations:           patterns,
		TotalPermutationsFound: len(patterns),
		BestYieldPercentage:    bestYield,
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// cacheKey builds a deterministic fingerprint of the material and request.
// Material pricing fields are part of the key so a catalog update is never
// served a stale costing. Width order is irrelevant to the calculation, so
// the widths are sorted into a copy first and [300,400] shares an entry
// with [400,300].
func cacheKey(material model.Material, req model.PermutationRequest) string {
	widths := append([]float64(nil), req.DesiredSlitWidths...)
	sort.Float64s(widths)

	var b strings.Builder
	b.WriteString(material.MaterialID)
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(material.MasterWidthMM, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(material.GSM, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(material.PricePerTonneAUD, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(material.TotalLinearMeters, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(req.WasteAllowanceMM, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.QuantityMasterRolls))
	for _, w := range widths {
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	}
	return b.String()
}
