package controller

import m "github.com/mouse-blink/monobump/internal/model"

func sampleReport() m.Report {
	return m.Report{
		Baseline:       m.Reference{Name: "v1.2.3", Hash: "abc123"},
		DryRun:         true,
		Scanned:        4,
		Qualifying:     2,
		SkippedMerges:  1,
		Unconventional: 1,
		Changes: []m.VersionChange{
			{
				Component: "core",
				Level:     m.BumpMinor,
				From:      m.MustParseVersion("1.2.3"),
				To:        m.MustParseVersion("1.3.0"),
				Record:    "plugins/core/.claude-plugin/plugin.json",
			},
			{
				Component: "web",
				Level:     m.BumpPatch,
				From:      m.MustParseVersion("0.4.0"),
				To:        m.MustParseVersion("0.4.1"),
				Record:    "plugins/web/.claude-plugin/plugin.json",
			},
		},
		Aggregate:         m.MustParseVersion("1.3.0"),
		PreviousAggregate: "1.2.3",
		Warnings:          []string{"web updated but not listed in marketplace.json"},
		Files: []m.Path{
			"plugins/core/.claude-plugin/plugin.json",
			"plugins/web/.claude-plugin/plugin.json",
			"marketplace.json",
		},
	}
}

func sampleComponents() []m.ComponentVersion {
	return []m.ComponentVersion{
		{Name: "core", Version: m.MustParseVersion("1.3.0"), Record: "plugins/core/.claude-plugin/plugin.json"},
		{Name: "fresh", Record: "plugins/fresh/.claude-plugin/plugin.json", Normalized: true},
	}
}
