package gantt

import "github.com/andybalholm/cascadia"

// CSS class names carried by rendered elements. Embedding stylesheets and
// tests select on these, so they are part of the output contract.
const (
	ClassCanvas           = "carbon-graph-canvas"
	ClassBackground       = "carbon-canvas-background"
	ClassContentContainer = "carbon-content-container"
	ClassGrid             = "carbon-grid"
	ClassGridTick         = "carbon-grid-tick"
	ClassGridTrack        = "carbon-grid-track"
	ClassAxis             = "carbon-axis"
	ClassAxisX            = "carbon-axis-x"
	ClassAxisY            = "carbon-axis-y"
	ClassAxisDomain       = "domain"
	ClassTick             = "tick"
	ClassAxisLabel        = "carbon-axis-label"
	ClassAxisLabelX       = "carbon-axis-label-x"
	ClassTrackLabel       = "carbon-track-label"
	ClassClickable        = "carbon-clickable"

	ClassTrack         = "carbon-track"
	ClassTrackSelector = "carbon-track-selector"

	ClassActivityGroup = "carbon-activity-group"
	ClassActivity      = "carbon-activity"
	ClassActivityBar   = "carbon-activity-bar"

	ClassTaskGroup      = "carbon-task-group"
	ClassTask           = "carbon-task"
	ClassTaskBar        = "carbon-task-bar"
	ClassTaskCompletion = "carbon-task-completion"
	ClassHashed         = "carbon-hashed"
	ClassDotted         = "carbon-dotted"

	ClassEventGroup           = "carbon-event-group"
	ClassActionGroup          = "carbon-action-group"
	ClassDataPoint            = "carbon-data-point"
	ClassDataPointShape       = "carbon-data-point-shape"
	ClassDataPointSelected    = "carbon-data-point-selected"
	ClassDataPointEvent       = "carbon-data-point-event"
	ClassDataPointAction      = "carbon-data-point-action"
	ClassDataPointPassThrough = "carbon-data-point-pass-through"
)

// Accessibility attributes. Their boolean-string values are the public state
// contract of every interactive element.
const (
	attrDescribedBy = "aria-describedby"
	attrHidden      = "aria-hidden"
	attrSelected    = "aria-selected"
	attrDisabled    = "aria-disabled"
)

const (
	eventClick = "click"

	// selectedMarkerScale enlarges the selection marker drawn behind a point.
	selectedMarkerScale = 1.6
	// trackContainerPrefix prefixes the aria-describedby of a track container.
	trackContainerPrefix = "track_"
)

var (
	matchTrackSelector = cascadia.MustCompile("." + ClassTrackSelector)
	matchActivityGroup = cascadia.MustCompile("." + ClassActivityGroup)
	matchActivity      = cascadia.MustCompile("." + ClassActivity)
	matchTaskGroup     = cascadia.MustCompile("." + ClassTaskGroup)
	matchTask          = cascadia.MustCompile("." + ClassTask)
	matchEventGroup    = cascadia.MustCompile("." + ClassEventGroup)
	matchActionGroup   = cascadia.MustCompile("." + ClassActionGroup)
	matchDataPoint     = cascadia.MustCompile("." + ClassDataPoint)
	matchSelected      = cascadia.MustCompile("." + ClassDataPointSelected)
	matchTick          = cascadia.MustCompile("." + ClassTick)
)
