package reservation

type Service string

const (
	ServiceMaintenance  Service = "Mantenimiento"
	ServiceRepair       Service = "Reparación"
	ServiceInspection   Service = "Revisión"
	ServiceOilChange    Service = "Cambio de aceite"
	ServiceBrakes       Service = "Frenos"
	ServiceSuspension   Service = "Suspensión"
	ServiceEngine       Service = "Motor"
	ServiceTransmission Service = "Transmisión"
)

var Services = []Service{
	ServiceMaintenance,
	ServiceRepair,
	ServiceInspection,
	ServiceOilChange,
	ServiceBrakes,
	ServiceSuspension,
	ServiceEngine,
	ServiceTransmission,
}

func (s Service) Valid() bool {
	switch s {
	case ServiceMaintenance, ServiceRepair, ServiceInspection, ServiceOilChange,
		ServiceBrakes, ServiceSuspension, ServiceEngine, ServiceTransmission:
		return true
	}
	return false
}
