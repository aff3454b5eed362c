package stress

// Protocol pairs detection indicators with response actions for one
// (trigger type, severity) combination.
type Protocol struct {
	Detection   []string
	Response    []string
	ExampleCode string
}

type Table map[string]map[string]Protocol

func Severities() []string {
	return []string{"mild", "moderate", "high"}
}

func TriggerTypes() []string {
	return []string{"behavioral", "physiological", "performance"}
}

// DefaultTable populates behavioral and physiological protocols.
// "performance" is part of the tool's declared input domain but is
// reserved: it has no table entry and lookups for it report invalid
// parameters. Do not backfill it here without a protocol review.
func DefaultTable() Table {
	return Table{
		"behavioral": {
			"mild": {
				Detection: []string{
					"Pauses lengthen between interactions",
					"Repeated erasing or undoing of answers",
					"Shifts in seat, looks away from screen briefly",
				},
				Response: []string{
					"Soften the next prompt and slow the pacing",
					"Have the companion character model taking a breath",
					"Offer an optional easier variant without naming it easier",
				},
				ExampleCode: "if (idleSeconds > 20 && undoCount >= 3) {\n  pacing.slow();\n  companion.modelBreath();\n}",
			},
			"moderate": {
				Detection: []string{
					"Rapid random tapping or clicking",
					"Abandons task midway more than once",
					"Requests to quit or switch activities",
				},
				Response: []string{
					"Pause new content and surface a choice of two calmer activities",
					"Shrink the task to a single guaranteed-success step",
					"Acknowledge effort explicitly before any new prompt",
				},
				ExampleCode: "if (tapBurst() || abandonCount > 1) {\n  session.pauseNewContent();\n  session.offerChoice(['quiet_reading', 'drawing']);\n}",
			},
			"high": {
				Detection: []string{
					"Refusal to engage with any prompt",
					"Covering face, pushing device away",
					"Crying or verbal distress",
				},
				Response: []string{
					"Stop all learning prompts immediately",
					"Switch to the calm space with slow breathing guidance",
					"Notify the supervising adult without alerting the learner",
				},
				ExampleCode: "if (distressSignals.any()) {\n  session.stopPrompts();\n  ui.enterCalmSpace();\n  caregiver.notifyQuietly();\n}",
			},
		},
		"physiological": {
			"mild": {
				Detection: []string{
					"Breathing rate slightly elevated from baseline",
					"Grip pressure on device increases",
					"Posture stiffens",
				},
				Response: []string{
					"Lower audio volume and visual density",
					"Insert a stretch break into the activity flow",
					"Slow the narrator's speaking rate",
				},
				ExampleCode: "if (breathRate > baseline * 1.15) {\n  ui.reduceDensity();\n  narrator.setRate('slow');\n}",
			},
			"moderate": {
				Detection: []string{
					"Sustained elevated heart rate",
					"Shallow or held breathing",
					"Fidgeting that interrupts the task",
				},
				Response: []string{
					"Start a guided breathing interlude",
					"Replace the current task with a movement-based one",
					"Dim the interface to the calm palette",
				},
				ExampleCode: "if (heartRate.sustainedAbove(baseline * 1.3)) {\n  interlude.breathing(60);\n  theme.usePalette('gentle');\n}",
			},
			"high": {
				Detection: []string{
					"Heart rate well above baseline with no recovery",
					"Trembling or visible agitation",
					"Hyperventilation indicators",
				},
				Response: []string{
					"End the session gently with a familiar closing ritual",
					"Guide long exhale breathing with on-screen pacing",
					"Alert the supervising adult immediately",
				},
				ExampleCode: "if (heartRate.noRecovery(120)) {\n  session.endGently();\n  breathing.guideLongExhale();\n  caregiver.alert();\n}",
			},
		},
	}
}

func (t Table) Lookup(triggerType, severity string) (Protocol, bool) {
	bySeverity, ok := t[triggerType]
	if !ok {
		return Protocol{}, false
	}
	protocol, ok := bySeverity[severity]
	return protocol, ok
}
