package main

import "sync"

type Config struct {
	LogDepthScores   bool `json:"log_depth_scores"`
	AiTimeBudgetMs   int  `json:"ai_time_budget_ms"`
	AiDepthOverride  int  `json:"ai_depth_override"`
	AiQuickWinExit   bool `json:"ai_quick_win_exit"`
	AiLogSearchStats bool `json:"ai_log_search_stats"`

	// TT sizing
	AiTtSize    int `json:"ai_tt_size"`
	AiTtBuckets int `json:"ai_tt_buckets"`

	Heuristics HeuristicConfig `json:"heuristics"`
}

// HeuristicConfig carries the pattern weights used by both the point
// evaluator and the static board evaluator. Compound bonuses are sized so
// a double threat always outranks any single non-winning threat.
type HeuristicConfig struct {
	Five    float64 `json:"five"`
	Open4   float64 `json:"open_4"`
	Simple4 float64 `json:"simple_4"`
	Broken3 float64 `json:"broken_3"`
	Open3   float64 `json:"open_3"`
	Simple3 float64 `json:"simple_3"`
	Open2   float64 `json:"open_2"`
	Simple2 float64 `json:"simple_2"`
	Open1   float64 `json:"open_1"`

	DoubleFourBonus  float64 `json:"double_four_bonus"`
	FourThreeBonus   float64 `json:"four_three_bonus"`
	DoubleThreeBonus float64 `json:"double_three_bonus"`

	DefenseWeight   float64 `json:"defense_weight"`
	CenterWeight    float64 `json:"center_weight"`
	OppThreatFactor float64 `json:"opp_threat_factor"`
	ResidualWeight  float64 `json:"residual_weight"`
}

// TierParams is the per-difficulty knob set consumed by the selector
// cascade. A zero Vcf/Vct depth disables the forcing searches.
type TierParams struct {
	SearchDepth    int
	CandidateLimit int
	VcfDepth       int
	VctDepth       int
	ForcingBranch  int
	RandomChance   float64
	RandomTopK     int
}

func tierParams(d Difficulty, cfg Config) TierParams {
	var p TierParams
	switch d {
	case DifficultyEasy:
		p = TierParams{SearchDepth: 0, CandidateLimit: 16, RandomChance: 0.25, RandomTopK: 3}
	case DifficultyMedium:
		p = TierParams{SearchDepth: 2, CandidateLimit: 12}
	case DifficultyHard:
		p = TierParams{SearchDepth: 4, CandidateLimit: 10}
	default:
		p = TierParams{SearchDepth: 6, CandidateLimit: 8, VcfDepth: 16, VctDepth: 10, ForcingBranch: 12}
	}
	if cfg.AiDepthOverride > 0 && p.SearchDepth > 0 {
		p.SearchDepth = cfg.AiDepthOverride
	}
	return p
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		LogDepthScores: false,

		AiTimeBudgetMs:  2000,
		AiDepthOverride: 0,
		AiQuickWinExit:  true,

		AiTtSize:    1 << 18,
		AiTtBuckets: 4,

		AiLogSearchStats: false,

		Heuristics: HeuristicConfig{
			Five:    10000000.0,
			Open4:   1000000.0,
			Simple4: 100000.0,
			Broken3: 55000.0,
			Open3:   50000.0,
			Simple3: 5000.0,
			Open2:   1000.0,
			Simple2: 200.0,
			Open1:   50.0,

			DoubleFourBonus:  900000.0,
			FourThreeBonus:   500000.0,
			DoubleThreeBonus: 120000.0,

			// Above 1 so blocking an opposing shape outranks
			// extending an equal one of our own.
			DefenseWeight:   1.1,
			CenterWeight:    2.0,
			OppThreatFactor: 1.1,
			ResidualWeight:  0.05,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
