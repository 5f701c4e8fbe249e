package actions

import "testing"

func TestDeriveName(t *testing.T) {
	cases := map[string]string{
		"LookDown":          "look_down",
		"MoveForward":       "move_forward",
		"SetSensorPitch":    "set_sensor_pitch",
		"SetSensorRotation": "set_sensor_rotation",
		"TurnLeft":          "turn_left",
		"X":                 "x",
		"already_snake":     "already_snake",
	}

	for identifier, want := range cases {
		if got := DeriveName(identifier); got != want {
			t.Errorf("DeriveName(%q) = %q, want %q", identifier, got, want)
		}
	}
}

func TestActionNamesAreStable(t *testing.T) {
	// The derived tokens are the wire contract; any change here breaks
	// every stored or in-flight action object.
	expected := map[string]Action{
		"look_down":           NewLookDown("a", 1),
		"look_up":             NewLookUp("a", 1),
		"move_forward":        NewMoveForward("a", 1),
		"move_tangentially":   NewMoveTangentially("a", 1, VectorXYZ{1, 0, 0}),
		"orient_horizontal":   NewOrientHorizontal("a", 1, 2, 3),
		"orient_vertical":     NewOrientVertical("a", 1, 2, 3),
		"set_agent_pitch":     NewSetAgentPitch("a", 1),
		"set_agent_pose":      NewSetAgentPose("a", VectorXYZ{}, QuaternionWXYZ{1, 0, 0, 0}),
		"set_sensor_pitch":    NewSetSensorPitch("a", 1),
		"set_sensor_pose":     NewSetSensorPose("a", VectorXYZ{}, QuaternionWXYZ{1, 0, 0, 0}),
		"set_sensor_rotation": NewSetSensorRotation("a", QuaternionWXYZ{1, 0, 0, 0}),
		"set_yaw":             NewSetYaw("a", 1),
		"turn_left":           NewTurnLeft("a", 1),
		"turn_right":          NewTurnRight("a", 1),
	}

	seen := make(map[string]bool)
	for want, action := range expected {
		got := action.Name()
		if got != want {
			t.Errorf("Expected name %q, got %q", want, got)
		}
		if seen[got] {
			t.Errorf("Name %q is not unique across variants", got)
		}
		seen[got] = true
	}
}

func TestNamesCoverEveryVariant(t *testing.T) {
	names := Names()
	if len(names) != 14 {
		t.Fatalf("Expected 14 action names, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
