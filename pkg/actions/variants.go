package actions

// Wire tokens are derived once from the type identifiers so that the public
// action name and the wire discriminator can never drift apart.
var (
	nameLookDown          = DeriveName("LookDown")
	nameLookUp            = DeriveName("LookUp")
	nameMoveForward       = DeriveName("MoveForward")
	nameMoveTangentially  = DeriveName("MoveTangentially")
	nameOrientHorizontal  = DeriveName("OrientHorizontal")
	nameOrientVertical    = DeriveName("OrientVertical")
	nameSetAgentPitch     = DeriveName("SetAgentPitch")
	nameSetAgentPose      = DeriveName("SetAgentPose")
	nameSetSensorPitch    = DeriveName("SetSensorPitch")
	nameSetSensorPose     = DeriveName("SetSensorPose")
	nameSetSensorRotation = DeriveName("SetSensorRotation")
	nameSetYaw            = DeriveName("SetYaw")
	nameTurnLeft          = DeriveName("TurnLeft")
	nameTurnRight         = DeriveName("TurnRight")
)

// LookDown rotates the agent downward by a number of degrees, bounded by a
// rotation constraint.
type LookDown struct {
	agentID           string
	rotationDegrees   float64
	constraintDegrees float64
}

// NewLookDown builds a LookDown with the default rotation constraint.
func NewLookDown(agentID string, rotationDegrees float64) LookDown {
	return LookDown{agentID, rotationDegrees, DefaultConstraintDegrees}
}

// NewLookDownConstrained builds a LookDown with an explicit constraint.
func NewLookDownConstrained(agentID string, rotationDegrees, constraintDegrees float64) LookDown {
	return LookDown{agentID, rotationDegrees, constraintDegrees}
}

func (a LookDown) Name() string               { return nameLookDown }
func (a LookDown) AgentID() string            { return a.agentID }
func (a LookDown) RotationDegrees() float64   { return a.rotationDegrees }
func (a LookDown) ConstraintDegrees() float64 { return a.constraintDegrees }

func (a LookDown) Fields() []Field {
	return []Field{
		{"action", nameLookDown},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
		{"constraint_degrees", a.constraintDegrees},
	}
}

func (a LookDown) Act(act Actuator) error { return act.ActuateLookDown(a) }

// LookUp rotates the agent upward by a number of degrees, bounded by a
// rotation constraint.
type LookUp struct {
	agentID           string
	rotationDegrees   float64
	constraintDegrees float64
}

// NewLookUp builds a LookUp with the default rotation constraint.
func NewLookUp(agentID string, rotationDegrees float64) LookUp {
	return LookUp{agentID, rotationDegrees, DefaultConstraintDegrees}
}

// NewLookUpConstrained builds a LookUp with an explicit constraint.
func NewLookUpConstrained(agentID string, rotationDegrees, constraintDegrees float64) LookUp {
	return LookUp{agentID, rotationDegrees, constraintDegrees}
}

func (a LookUp) Name() string               { return nameLookUp }
func (a LookUp) AgentID() string            { return a.agentID }
func (a LookUp) RotationDegrees() float64   { return a.rotationDegrees }
func (a LookUp) ConstraintDegrees() float64 { return a.constraintDegrees }

func (a LookUp) Fields() []Field {
	return []Field{
		{"action", nameLookUp},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
		{"constraint_degrees", a.constraintDegrees},
	}
}

func (a LookUp) Act(act Actuator) error { return act.ActuateLookUp(a) }

// MoveForward moves the agent forward by a distance.
type MoveForward struct {
	agentID  string
	distance float64
}

// NewMoveForward builds a MoveForward.
func NewMoveForward(agentID string, distance float64) MoveForward {
	return MoveForward{agentID, distance}
}

func (a MoveForward) Name() string      { return nameMoveForward }
func (a MoveForward) AgentID() string   { return a.agentID }
func (a MoveForward) Distance() float64 { return a.distance }

func (a MoveForward) Fields() []Field {
	return []Field{
		{"action", nameMoveForward},
		{"agent_id", a.agentID},
		{"distance", a.distance},
	}
}

func (a MoveForward) Act(act Actuator) error { return act.ActuateMoveForward(a) }

// MoveTangentially moves the agent a distance along a direction tangential
// to its current orientation.
type MoveTangentially struct {
	agentID   string
	distance  float64
	direction VectorXYZ
}

// NewMoveTangentially builds a MoveTangentially.
func NewMoveTangentially(agentID string, distance float64, direction VectorXYZ) MoveTangentially {
	return MoveTangentially{agentID, distance, direction}
}

func (a MoveTangentially) Name() string         { return nameMoveTangentially }
func (a MoveTangentially) AgentID() string      { return a.agentID }
func (a MoveTangentially) Distance() float64    { return a.distance }
func (a MoveTangentially) Direction() VectorXYZ { return a.direction }

func (a MoveTangentially) Fields() []Field {
	return []Field{
		{"action", nameMoveTangentially},
		{"agent_id", a.agentID},
		{"distance", a.distance},
		{"direction", a.direction},
	}
}

func (a MoveTangentially) Act(act Actuator) error { return act.ActuateMoveTangentially(a) }

// OrientHorizontal rotates the agent in the horizontal plane while
// compensating with lateral and forward motion.
type OrientHorizontal struct {
	agentID         string
	rotationDegrees float64
	leftDistance    float64
	forwardDistance float64
}

// NewOrientHorizontal builds an OrientHorizontal.
func NewOrientHorizontal(agentID string, rotationDegrees, leftDistance, forwardDistance float64) OrientHorizontal {
	return OrientHorizontal{agentID, rotationDegrees, leftDistance, forwardDistance}
}

func (a OrientHorizontal) Name() string             { return nameOrientHorizontal }
func (a OrientHorizontal) AgentID() string          { return a.agentID }
func (a OrientHorizontal) RotationDegrees() float64 { return a.rotationDegrees }
func (a OrientHorizontal) LeftDistance() float64    { return a.leftDistance }
func (a OrientHorizontal) ForwardDistance() float64 { return a.forwardDistance }

func (a OrientHorizontal) Fields() []Field {
	return []Field{
		{"action", nameOrientHorizontal},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
		{"left_distance", a.leftDistance},
		{"forward_distance", a.forwardDistance},
	}
}

func (a OrientHorizontal) Act(act Actuator) error { return act.ActuateOrientHorizontal(a) }

// OrientVertical rotates the agent in the vertical plane while compensating
// with downward and forward motion.
type OrientVertical struct {
	agentID         string
	rotationDegrees float64
	downDistance    float64
	forwardDistance float64
}

// NewOrientVertical builds an OrientVertical.
func NewOrientVertical(agentID string, rotationDegrees, downDistance, forwardDistance float64) OrientVertical {
	return OrientVertical{agentID, rotationDegrees, downDistance, forwardDistance}
}

func (a OrientVertical) Name() string             { return nameOrientVertical }
func (a OrientVertical) AgentID() string          { return a.agentID }
func (a OrientVertical) RotationDegrees() float64 { return a.rotationDegrees }
func (a OrientVertical) DownDistance() float64    { return a.downDistance }
func (a OrientVertical) ForwardDistance() float64 { return a.forwardDistance }

func (a OrientVertical) Fields() []Field {
	return []Field{
		{"action", nameOrientVertical},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
		{"down_distance", a.downDistance},
		{"forward_distance", a.forwardDistance},
	}
}

func (a OrientVertical) Act(act Actuator) error { return act.ActuateOrientVertical(a) }

// SetAgentPitch sets the absolute pitch of the agent body. Sensors keep
// their orientation relative to the agent, so their pitch follows.
type SetAgentPitch struct {
	agentID      string
	pitchDegrees float64
}

// NewSetAgentPitch builds a SetAgentPitch.
func NewSetAgentPitch(agentID string, pitchDegrees float64) SetAgentPitch {
	return SetAgentPitch{agentID, pitchDegrees}
}

func (a SetAgentPitch) Name() string          { return nameSetAgentPitch }
func (a SetAgentPitch) AgentID() string       { return a.agentID }
func (a SetAgentPitch) PitchDegrees() float64 { return a.pitchDegrees }

func (a SetAgentPitch) Fields() []Field {
	return []Field{
		{"action", nameSetAgentPitch},
		{"agent_id", a.agentID},
		{"pitch_degrees", a.pitchDegrees},
	}
}

func (a SetAgentPitch) Act(act Actuator) error { return act.ActuateSetAgentPitch(a) }

// SetAgentPose sets the agent to an absolute location and orientation in the
// environment.
type SetAgentPose struct {
	agentID      string
	location     VectorXYZ
	rotationQuat QuaternionWXYZ
}

// NewSetAgentPose builds a SetAgentPose.
func NewSetAgentPose(agentID string, location VectorXYZ, rotationQuat QuaternionWXYZ) SetAgentPose {
	return SetAgentPose{agentID, location, rotationQuat}
}

func (a SetAgentPose) Name() string                 { return nameSetAgentPose }
func (a SetAgentPose) AgentID() string              { return a.agentID }
func (a SetAgentPose) Location() VectorXYZ          { return a.location }
func (a SetAgentPose) RotationQuat() QuaternionWXYZ { return a.rotationQuat }

func (a SetAgentPose) Fields() []Field {
	return []Field{
		{"action", nameSetAgentPose},
		{"agent_id", a.agentID},
		{"location", a.location},
		{"rotation_quat", a.rotationQuat},
	}
}

func (a SetAgentPose) Act(act Actuator) error { return act.ActuateSetAgentPose(a) }

// SetSensorPitch sets the absolute pitch of the sensor while the agent body
// stays in place.
type SetSensorPitch struct {
	agentID      string
	pitchDegrees float64
}

// NewSetSensorPitch builds a SetSensorPitch.
func NewSetSensorPitch(agentID string, pitchDegrees float64) SetSensorPitch {
	return SetSensorPitch{agentID, pitchDegrees}
}

func (a SetSensorPitch) Name() string          { return nameSetSensorPitch }
func (a SetSensorPitch) AgentID() string       { return a.agentID }
func (a SetSensorPitch) PitchDegrees() float64 { return a.pitchDegrees }

func (a SetSensorPitch) Fields() []Field {
	return []Field{
		{"action", nameSetSensorPitch},
		{"agent_id", a.agentID},
		{"pitch_degrees", a.pitchDegrees},
	}
}

func (a SetSensorPitch) Act(act Actuator) error { return act.ActuateSetSensorPitch(a) }

// SetSensorPose sets the sensor to an absolute location and orientation in
// the environment.
type SetSensorPose struct {
	agentID      string
	location     VectorXYZ
	rotationQuat QuaternionWXYZ
}

// NewSetSensorPose builds a SetSensorPose.
func NewSetSensorPose(agentID string, location VectorXYZ, rotationQuat QuaternionWXYZ) SetSensorPose {
	return SetSensorPose{agentID, location, rotationQuat}
}

func (a SetSensorPose) Name() string                 { return nameSetSensorPose }
func (a SetSensorPose) AgentID() string              { return a.agentID }
func (a SetSensorPose) Location() VectorXYZ          { return a.location }
func (a SetSensorPose) RotationQuat() QuaternionWXYZ { return a.rotationQuat }

func (a SetSensorPose) Fields() []Field {
	return []Field{
		{"action", nameSetSensorPose},
		{"agent_id", a.agentID},
		{"location", a.location},
		{"rotation_quat", a.rotationQuat},
	}
}

func (a SetSensorPose) Act(act Actuator) error { return act.ActuateSetSensorPose(a) }

// SetSensorRotation sets the sensor rotation relative to the agent.
type SetSensorRotation struct {
	agentID      string
	rotationQuat QuaternionWXYZ
}

// NewSetSensorRotation builds a SetSensorRotation.
func NewSetSensorRotation(agentID string, rotationQuat QuaternionWXYZ) SetSensorRotation {
	return SetSensorRotation{agentID, rotationQuat}
}

func (a SetSensorRotation) Name() string                 { return nameSetSensorRotation }
func (a SetSensorRotation) AgentID() string              { return a.agentID }
func (a SetSensorRotation) RotationQuat() QuaternionWXYZ { return a.rotationQuat }

func (a SetSensorRotation) Fields() []Field {
	return []Field{
		{"action", nameSetSensorRotation},
		{"agent_id", a.agentID},
		{"rotation_quat", a.rotationQuat},
	}
}

func (a SetSensorRotation) Act(act Actuator) error { return act.ActuateSetSensorRotation(a) }

// SetYaw sets the absolute yaw rotation of the agent body.
type SetYaw struct {
	agentID         string
	rotationDegrees float64
}

// NewSetYaw builds a SetYaw.
func NewSetYaw(agentID string, rotationDegrees float64) SetYaw {
	return SetYaw{agentID, rotationDegrees}
}

func (a SetYaw) Name() string             { return nameSetYaw }
func (a SetYaw) AgentID() string          { return a.agentID }
func (a SetYaw) RotationDegrees() float64 { return a.rotationDegrees }

func (a SetYaw) Fields() []Field {
	return []Field{
		{"action", nameSetYaw},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
	}
}

func (a SetYaw) Act(act Actuator) error { return act.ActuateSetYaw(a) }

// TurnLeft rotates the agent to the left by a number of degrees.
type TurnLeft struct {
	agentID         string
	rotationDegrees float64
}

// NewTurnLeft builds a TurnLeft.
func NewTurnLeft(agentID string, rotationDegrees float64) TurnLeft {
	return TurnLeft{agentID, rotationDegrees}
}

func (a TurnLeft) Name() string             { return nameTurnLeft }
func (a TurnLeft) AgentID() string          { return a.agentID }
func (a TurnLeft) RotationDegrees() float64 { return a.rotationDegrees }

func (a TurnLeft) Fields() []Field {
	return []Field{
		{"action", nameTurnLeft},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
	}
}

func (a TurnLeft) Act(act Actuator) error { return act.ActuateTurnLeft(a) }

// TurnRight rotates the agent to the right by a number of degrees.
type TurnRight struct {
	agentID         string
	rotationDegrees float64
}

// NewTurnRight builds a TurnRight.
func NewTurnRight(agentID string, rotationDegrees float64) TurnRight {
	return TurnRight{agentID, rotationDegrees}
}

func (a TurnRight) Name() string             { return nameTurnRight }
func (a TurnRight) AgentID() string          { return a.agentID }
func (a TurnRight) RotationDegrees() float64 { return a.rotationDegrees }

func (a TurnRight) Fields() []Field {
	return []Field{
		{"action", nameTurnRight},
		{"agent_id", a.agentID},
		{"rotation_degrees", a.rotationDegrees},
	}
}

func (a TurnRight) Act(act Actuator) error { return act.ActuateTurnRight(a) }
