package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyTagline          = "tagline"
	KeyStartPlanning    = "start_planning"
	KeyPopular          = "popular_destinations"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyStepWhereWhen    = "step_where_when"
	KeyStepWho          = "step_who"
	KeyStepPreferences  = "step_preferences"
	KeyStepOf           = "step_of"
	KeyDestination      = "destination"
	KeyDestinationHint  = "destination_hint"
	KeyStartDate        = "start_date"
	KeyEndDate          = "end_date"
	KeyDateHint         = "date_hint"
	KeyTravelers        = "travelers"
	KeyTravelerType     = "traveler_type"
	KeyTravelStyle      = "travel_style"
	KeyBudget           = "budget"
	KeyBudgetHint       = "budget_hint"
	KeyInterests        = "interests"
	KeyInterestsHint    = "interests_hint"
	KeySpecialRequests  = "special_requests"
	KeySpecialHint      = "special_hint"
	KeyNext             = "next"
	KeyBack             = "back"
	KeyGenerate         = "generate"
	KeyCancel           = "cancel"
	KeySave             = "save"
	KeyBrowse           = "browse"
	KeyCreatingTrip     = "creating_trip"
	KeyDidYouKnow       = "did_you_know"
	KeyDownloadJSON     = "download_json"
	KeyDownloadPDF      = "download_pdf"
	KeyShare            = "share"
	KeyPlanAnother      = "plan_another"
	KeyViewOnMap        = "view_on_map"
	KeyDailyTips        = "daily_tips"
	KeyExported         = "exported"
	KeyExportFailed     = "export_failed"
	KeyShareFailed      = "share_failed"
	KeyCopiedToClip     = "copied_to_clipboard"
	KeyGenerationFailed = "generation_failed"
	KeySettingsSaved    = "settings_saved"
	KeyAPIBaseURL       = "api_base_url"
	KeyConnectTimeout   = "connect_timeout"
	KeyRequestTimeout   = "request_timeout"
	KeySuggestionLimit  = "suggestion_limit"
	KeySubstringMatches = "substring_matches"
	KeyExportDirectory  = "export_directory"
	KeyAutoReveal       = "auto_reveal"
	KeyShareURL         = "share_url"
	KeyInvalidNumber    = "invalid_number"
	KeyServiceSection   = "service_section"
	KeySearchSection    = "search_section"
	KeyExportSection    = "export_section"
	KeyInterfaceSection = "interface_section"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// System locale detection is not wired; English it is
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "TripWise",
		KeyTagline:          "Your AI travel planner. Tell us where, we plan the rest.",
		KeyStartPlanning:    "Start Planning",
		KeyPopular:          "Popular destinations",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyStepWhereWhen:    "Where & When",
		KeyStepWho:          "Who's Traveling",
		KeyStepPreferences:  "Preferences",
		KeyStepOf:           "Step %d of %d",
		KeyDestination:      "Destination",
		KeyDestinationHint:  "Where do you want to go?",
		KeyStartDate:        "Start date",
		KeyEndDate:          "End date",
		KeyDateHint:         "YYYY-MM-DD",
		KeyTravelers:        "Number of travelers",
		KeyTravelerType:     "Traveler type",
		KeyTravelStyle:      "Travel style",
		KeyBudget:           "Budget (€)",
		KeyBudgetHint:       "e.g. 1500",
		KeyInterests:        "Interests",
		KeyInterestsHint:    "Museums, street food, hiking...",
		KeySpecialRequests:  "Special requests",
		KeySpecialHint:      "Vegan food, accessibility, kid-friendly...",
		KeyNext:             "Next",
		KeyBack:             "Back",
		KeyGenerate:         "Generate Itinerary",
		KeyCancel:           "Cancel",
		KeySave:             "Save",
		KeyBrowse:           "Browse",
		KeyCreatingTrip:     "Creating your perfect trip",
		KeyDidYouKnow:       "Did you know?",
		KeyDownloadJSON:     "Download",
		KeyDownloadPDF:      "PDF",
		KeyShare:            "Share",
		KeyPlanAnother:      "Plan Another Trip",
		KeyViewOnMap:        "View on Map",
		KeyDailyTips:        "Daily Tips",
		KeyExported:         "Saved to %s",
		KeyExportFailed:     "Export failed",
		KeyShareFailed:      "Share failed",
		KeyCopiedToClip:     "Copied to clipboard",
		KeyGenerationFailed: "Could not create itinerary",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyAPIBaseURL:       "Service URL",
		KeyConnectTimeout:   "Connection check timeout (s)",
		KeyRequestTimeout:   "Generation timeout (s)",
		KeySuggestionLimit:  "Max suggestions",
		KeySubstringMatches: "Match inside city names",
		KeyExportDirectory:  "Export directory",
		KeyAutoReveal:       "Reveal exported file",
		KeyShareURL:         "Share link",
		KeyInvalidNumber:    "Please enter a number",
		KeyServiceSection:   "Service",
		KeySearchSection:    "Destination search",
		KeyExportSection:    "Export & share",
		KeyInterfaceSection: "Interface",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "TripWise",
		KeyTagline:          "Ваш ИИ-планировщик путешествий. Скажите куда, остальное за нами.",
		KeyStartPlanning:    "Начать планирование",
		KeyPopular:          "Популярные направления",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyStepWhereWhen:    "Куда и когда",
		KeyStepWho:          "Кто едет",
		KeyStepPreferences:  "Предпочтения",
		KeyStepOf:           "Шаг %d из %d",
		KeyDestination:      "Направление",
		KeyDestinationHint:  "Куда вы хотите поехать?",
		KeyStartDate:        "Дата начала",
		KeyEndDate:          "Дата окончания",
		KeyDateHint:         "ГГГГ-ММ-ДД",
		KeyTravelers:        "Количество путешественников",
		KeyTravelerType:     "Тип путешественника",
		KeyTravelStyle:      "Стиль поездки",
		KeyBudget:           "Бюджет (€)",
		KeyBudgetHint:       "например, 1500",
		KeyInterests:        "Интересы",
		KeyInterestsHint:    "Музеи, уличная еда, походы...",
		KeySpecialRequests:  "Особые пожелания",
		KeySpecialHint:      "Веганская еда, доступность, с детьми...",
		KeyNext:             "Далее",
		KeyBack:             "Назад",
		KeyGenerate:         "Создать маршрут",
		KeyCancel:           "Отмена",
		KeySave:             "Сохранить",
		KeyBrowse:           "Обзор",
		KeyCreatingTrip:     "Создаём идеальную поездку",
		KeyDidYouKnow:       "А вы знали?",
		KeyDownloadJSON:     "Скачать",
		KeyDownloadPDF:      "PDF",
		KeyShare:            "Поделиться",
		KeyPlanAnother:      "Спланировать ещё",
		KeyViewOnMap:        "На карте",
		KeyDailyTips:        "Советы дня",
		KeyExported:         "Сохранено в %s",
		KeyExportFailed:     "Ошибка экспорта",
		KeyShareFailed:      "Не удалось поделиться",
		KeyCopiedToClip:     "Скопировано в буфер обмена",
		KeyGenerationFailed: "Не удалось создать маршрут",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyAPIBaseURL:       "Адрес сервиса",
		KeyConnectTimeout:   "Таймаут проверки связи (с)",
		KeyRequestTimeout:   "Таймаут генерации (с)",
		KeySuggestionLimit:  "Макс. подсказок",
		KeySubstringMatches: "Искать внутри названий",
		KeyExportDirectory:  "Папка экспорта",
		KeyAutoReveal:       "Показывать файл после экспорта",
		KeyShareURL:         "Ссылка для отправки",
		KeyInvalidNumber:    "Введите число",
		KeyServiceSection:   "Сервис",
		KeySearchSection:    "Поиск направления",
		KeyExportSection:    "Экспорт и отправка",
		KeyInterfaceSection: "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "TripWise",
		KeyTagline:          "Seu planejador de viagens com IA. Diga para onde, nós planejamos o resto.",
		KeyStartPlanning:    "Começar a planejar",
		KeyPopular:          "Destinos populares",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyStepWhereWhen:    "Onde e quando",
		KeyStepWho:          "Quem vai viajar",
		KeyStepPreferences:  "Preferências",
		KeyStepOf:           "Etapa %d de %d",
		KeyDestination:      "Destino",
		KeyDestinationHint:  "Para onde você quer ir?",
		KeyStartDate:        "Data de início",
		KeyEndDate:          "Data de término",
		KeyDateHint:         "AAAA-MM-DD",
		KeyTravelers:        "Número de viajantes",
		KeyTravelerType:     "Tipo de viajante",
		KeyTravelStyle:      "Estilo de viagem",
		KeyBudget:           "Orçamento (€)",
		KeyBudgetHint:       "ex. 1500",
		KeyInterests:        "Interesses",
		KeyInterestsHint:    "Museus, comida de rua, trilhas...",
		KeySpecialRequests:  "Pedidos especiais",
		KeySpecialHint:      "Comida vegana, acessibilidade, crianças...",
		KeyNext:             "Próximo",
		KeyBack:             "Voltar",
		KeyGenerate:         "Gerar roteiro",
		KeyCancel:           "Cancelar",
		KeySave:             "Salvar",
		KeyBrowse:           "Navegar",
		KeyCreatingTrip:     "Criando sua viagem perfeita",
		KeyDidYouKnow:       "Você sabia?",
		KeyDownloadJSON:     "Baixar",
		KeyDownloadPDF:      "PDF",
		KeyShare:            "Compartilhar",
		KeyPlanAnother:      "Planejar outra viagem",
		KeyViewOnMap:        "Ver no mapa",
		KeyDailyTips:        "Dicas do dia",
		KeyExported:         "Salvo em %s",
		KeyExportFailed:     "Falha na exportação",
		KeyShareFailed:      "Falha ao compartilhar",
		KeyCopiedToClip:     "Copiado para a área de transferência",
		KeyGenerationFailed: "Não foi possível criar o roteiro",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyAPIBaseURL:       "URL do serviço",
		KeyConnectTimeout:   "Tempo limite da verificação (s)",
		KeyRequestTimeout:   "Tempo limite da geração (s)",
		KeySuggestionLimit:  "Máx. de sugestões",
		KeySubstringMatches: "Buscar dentro dos nomes",
		KeyExportDirectory:  "Diretório de exportação",
		KeyAutoReveal:       "Mostrar arquivo exportado",
		KeyShareURL:         "Link de compartilhamento",
		KeyInvalidNumber:    "Digite um número",
		KeyServiceSection:   "Serviço",
		KeySearchSection:    "Busca de destino",
		KeyExportSection:    "Exportar e compartilhar",
		KeyInterfaceSection: "Interface",
	}
}
