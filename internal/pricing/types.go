package pricing

// Flow tags which pricing pipeline an input is meant for.
type Flow string

const (
	FlowBuyback Flow = "buyback"
	FlowRepair  Flow = "repair"
)

type DeviceType string

const (
	DeviceSmartphone DeviceType = "smartphone"
	DeviceTablet     DeviceType = "tablet"
	DeviceLaptop     DeviceType = "laptop"
	DeviceWatch      DeviceType = "watch"
	DeviceConsole    DeviceType = "console"
)

// Device identifies the hardware being priced. Brand matching is exact on the
// lowercase tag stored in the catalog ("apple", "samsung", ...).
type Device struct {
	Brand   string
	Model   string
	Type    DeviceType
	Storage string // e.g. "128GB"; empty when the customer does not know
}

func (d Device) complete() bool {
	return d.Brand != "" && d.Model != "" && d.Type != ""
}

// Declared condition flags for a buyback valuation.

type ScreenState string

const (
	ScreenIntact      ScreenState = "intact"
	ScreenLightDamage ScreenState = "light_damage"
	ScreenCracked     ScreenState = "cracked"
)

type BodyState string

const (
	BodyIntact      BodyState = "intact"
	BodyLightDamage BodyState = "light_damage"
	BodyDents       BodyState = "dents"
	BodyBent        BodyState = "bent"
)

type BatteryHealth string

const (
	BatteryGood    BatteryHealth = "good"
	BatteryService BatteryHealth = "service" // iOS "service battery" warning
)

type BiometricState string

const (
	BiometricWorking BiometricState = "working"
	BiometricFaulty  BiometricState = "faulty"
)

// Issue identifies a repairable defect selected on the repair form. The tags
// double as catalog keys.
type Issue string

const (
	IssueScreen       Issue = "screen"
	IssueBattery      Issue = "battery"
	IssueBackCover    Issue = "back_cover"
	IssueChargingPort Issue = "charging_port"
	IssueCamera       Issue = "camera"
	IssueSpeaker      Issue = "speaker"
	IssueMicrophone   Issue = "microphone"
	IssueButtons      Issue = "buttons"
	IssueWaterDamage  Issue = "water_damage"
	IssueSoftware     Issue = "software"
)

// ScreenQuality is the part tier selected for a screen repair, highest to
// lowest cost: original > premium > standard.
type ScreenQuality string

const (
	QualityOriginal ScreenQuality = "original"
	QualityPremium  ScreenQuality = "premium"
	QualityStandard ScreenQuality = "standard"
)

type DeliveryMethod string

const (
	DeliveryDropOff DeliveryMethod = "drop_off"
	DeliveryCourier DeliveryMethod = "courier"
)

type CourierTier string

const (
	CourierStandard CourierTier = "standard"
	CourierExpress  CourierTier = "express"
)
