package main

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/tallyware/tally/internal/common"
	"github.com/tallyware/tally/internal/config"
	"github.com/tallyware/tally/internal/report"
	"github.com/tallyware/tally/internal/service"
	"github.com/tallyware/tally/internal/storage"
)

// openStorage opens the configured database. Callers are expected to
// run Migrate before their first query.
func openStorage() (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open database at %s", dbPath), err)
	}
	return store, nil
}

// reportConfig builds the engine configuration from viper, starting
// from the defaults so unset keys keep their stock values.
func reportConfig() report.Config {
	cfg := report.DefaultConfig()

	if viper.IsSet("report.warn_threshold") {
		cfg.WarnThresholdPct = viper.GetFloat64("report.warn_threshold")
	}
	if viper.IsSet("report.crit_threshold") {
		cfg.CritThresholdPct = viper.GetFloat64("report.crit_threshold")
	}
	if viper.IsSet("report.min_savings_amount") {
		cfg.MinSavingsAmount = viper.GetFloat64("report.min_savings_amount")
	}
	if viper.IsSet("report.lookback_days") {
		cfg.LookbackDays = viper.GetInt("report.lookback_days")
	}
	if viper.IsSet("report.max_suggestions") {
		cfg.MaxSuggestions = viper.GetInt("report.max_suggestions")
	}
	if viper.IsSet("report.top_category_limit") {
		cfg.TopCategoryLimit = viper.GetInt("report.top_category_limit")
	}
	if viper.IsSet("report.trend_months") {
		cfg.TrendMonths = viper.GetInt("report.trend_months")
	}
	if viper.IsSet("report.non_essential_keywords") {
		raw := viper.GetStringMapStringSlice("report.non_essential_keywords")
		topics := make([]string, 0, len(raw))
		for topic := range raw {
			topics = append(topics, topic)
		}
		// Viper hands back a map; sort topics so tie-breaking between
		// equally sized suggestions stays deterministic.
		sort.Strings(topics)
		groups := make([]report.KeywordGroup, 0, len(raw))
		for _, topic := range topics {
			groups = append(groups, report.KeywordGroup{Topic: topic, Keywords: raw[topic]})
		}
		cfg.NonEssentialKeywords = groups
	}

	return cfg
}
