package parameter

// Arena is derived from the view frustum of a camera looking down -Z at the play plane
const (
	// CameraFOV is the vertical field of view in degrees
	CameraFOV = 60.0

	// CameraAspect is the viewport width over height (1280x720)
	CameraAspect = 1280.0 / 720.0

	// CameraDistance is the distance from the camera to the play plane
	CameraDistance = 40.0
)
