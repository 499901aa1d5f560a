package services

import (
	"context"
	"testing"

	"github.com/kamal-hamza/skillsheet/internal/core/ports/mocks"
)

func TestStatsService_Execute(t *testing.T) {
	src := mocks.NewMockModuleSource()
	src.Add("kyo.json", `{"name": "草薙京", "skills": [
		{"name": "百式·鬼烧", "type": "必杀技", "command": "→↓↘+A/C", "images": ["1.jpg", "2.jpg"]},
		{"name": "大蛇薙", "type": "超必杀技", "command": "↓↙←↙↓↘→+A/C"}
	]}`)
	src.Add("iori.json", `{"name": "八神庵", "skills": [
		{"name": "暗拂", "type": "必杀技", "command": "↓↘→+A/C", "images": ["1.jpg"]},
		{"name": "屑风", "type": "", "command": "→↘↓↙←+B"}
	]}`)
	src.Add("broken.json", `{}`)

	resp, err := NewStatsService(NewRosterService(src, nil)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if resp.TotalSkills != 4 {
		t.Errorf("TotalSkills = %d, want 4", resp.TotalSkills)
	}
	if resp.TotalImages != 3 {
		t.Errorf("TotalImages = %d, want 3", resp.TotalImages)
	}
	if resp.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", resp.Skipped)
	}
	if len(resp.Characters) != 2 || resp.Characters[0].Name != "八神庵" {
		t.Errorf("rows should follow roster order: %+v", resp.Characters)
	}
	if len(resp.Types) == 0 || resp.Types[0].Type != "必杀技" || resp.Types[0].Count != 2 {
		t.Errorf("most common type should be 必杀技 x2, got %+v", resp.Types)
	}
}
