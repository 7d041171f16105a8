package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeySearch            = "search"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyVideoTitle        = "video_title"
	KeyNoVideo           = "no_video"
	KeySelectQuality     = "select_quality"
	KeyDownloadLocation  = "download_location"
	KeyDownloadDirectory = "download_directory"
	KeyBackend           = "backend"
	KeyYtDlpPath         = "ytdlp_path"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyShowInFolder      = "show_in_folder"
	KeyToggleTheme       = "toggle_theme"
	KeyEnterURL          = "enter_url"
	KeyReady             = "ready"
	KeyFetching          = "fetching"
	KeyVideoFound        = "video_found"
	KeyNoFormats         = "no_formats"
	KeyStartingDownload  = "starting_download"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadComplete  = "download_complete"
	KeyDownloadedTo      = "downloaded_to"
	KeyError             = "error"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseSelect      = "please_select"
	KeyAlreadyRunning    = "already_running"
	KeyBadDestination    = "bad_destination"
	KeyParsingPlaylist   = "parsing_playlist"
	KeyParsingFailed     = "parsing_failed"
	KeyChooseVideo       = "choose_video"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
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
		KeyAppTitle:          "YouTube Video Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeySearch:            "Fetch Video",
		KeyDownload:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyVideoTitle:        "Video Title",
		KeyNoVideo:           "No video selected",
		KeySelectQuality:     "Select Quality",
		KeyDownloadLocation:  "Download Location",
		KeyDownloadDirectory: "Download Directory",
		KeyBackend:           "Downloader Backend",
		KeyYtDlpPath:         "yt-dlp Path",
		KeyAutoReveal:        "Show file in folder when done",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyShowInFolder:      "Show in Folder",
		KeyToggleTheme:       "Toggle Dark Mode",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyReady:             "Ready",
		KeyFetching:          "Fetching video information...",
		KeyVideoFound:        "Video found!",
		KeyNoFormats:         "No downloadable formats found",
		KeyStartingDownload:  "Starting download...",
		KeyDownloadFailed:    "Download failed",
		KeyDownloadComplete:  "Download Complete",
		KeyDownloadedTo:      "Video downloaded successfully to:",
		KeyError:             "Error",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPleaseEnterURL:    "Please enter a YouTube URL",
		KeyInvalidURL:        "Invalid YouTube URL",
		KeyPleaseSelect:      "Please select a quality option",
		KeyAlreadyRunning:    "A download is already in progress",
		KeyBadDestination:    "Cannot use the download folder",
		KeyParsingPlaylist:   "Reading playlist...",
		KeyParsingFailed:     "Failed to read playlist",
		KeyChooseVideo:       "Choose a video",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Backend changes apply after restart.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик видео YouTube",
		KeyURLLabel:          "Ссылка YouTube:",
		KeySearch:            "Найти видео",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyVideoTitle:        "Название видео",
		KeyNoVideo:           "Видео не выбрано",
		KeySelectQuality:     "Выберите качество",
		KeyDownloadLocation:  "Папка загрузки",
		KeyDownloadDirectory: "Папка загрузки",
		KeyBackend:           "Способ загрузки",
		KeyYtDlpPath:         "Путь к yt-dlp",
		KeyAutoReveal:        "Показать файл после загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyShowInFolder:      "Показать в папке",
		KeyToggleTheme:       "Тёмная тема",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyReady:             "Готово",
		KeyFetching:          "Получение информации о видео...",
		KeyVideoFound:        "Видео найдено!",
		KeyNoFormats:         "Нет доступных форматов",
		KeyStartingDownload:  "Начало загрузки...",
		KeyDownloadFailed:    "Ошибка загрузки",
		KeyDownloadComplete:  "Загрузка завершена",
		KeyDownloadedTo:      "Видео сохранено в:",
		KeyError:             "Ошибка",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPleaseEnterURL:    "Пожалуйста, введите ссылку YouTube",
		KeyInvalidURL:        "Неверная ссылка YouTube",
		KeyPleaseSelect:      "Пожалуйста, выберите качество",
		KeyAlreadyRunning:    "Загрузка уже идёт",
		KeyBadDestination:    "Невозможно использовать папку загрузки",
		KeyParsingPlaylist:   "Чтение плейлиста...",
		KeyParsingFailed:     "Не удалось прочитать плейлист",
		KeyChooseVideo:       "Выберите видео",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Способ загрузки изменится после перезапуска.",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Baixador de Vídeos do YouTube",
		KeyURLLabel:          "URL do YouTube:",
		KeySearch:            "Buscar Vídeo",
		KeyDownload:          "Baixar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyVideoTitle:        "Título do Vídeo",
		KeyNoVideo:           "Nenhum vídeo selecionado",
		KeySelectQuality:     "Selecione a Qualidade",
		KeyDownloadLocation:  "Local de Download",
		KeyDownloadDirectory: "Diretório de Download",
		KeyBackend:           "Mecanismo de Download",
		KeyYtDlpPath:         "Caminho do yt-dlp",
		KeyAutoReveal:        "Mostrar arquivo ao concluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyShowInFolder:      "Mostrar na Pasta",
		KeyToggleTheme:       "Alternar Modo Escuro",
		KeyEnterURL:          "https://www.youtube.com/watch?v=...",
		KeyReady:             "Pronto",
		KeyFetching:          "Buscando informações do vídeo...",
		KeyVideoFound:        "Vídeo encontrado!",
		KeyNoFormats:         "Nenhum formato disponível",
		KeyStartingDownload:  "Iniciando download...",
		KeyDownloadFailed:    "Falha no download",
		KeyDownloadComplete:  "Download Concluído",
		KeyDownloadedTo:      "Vídeo baixado com sucesso em:",
		KeyError:             "Erro",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPleaseEnterURL:    "Por favor, digite uma URL do YouTube",
		KeyInvalidURL:        "URL do YouTube inválida",
		KeyPleaseSelect:      "Por favor, selecione uma qualidade",
		KeyAlreadyRunning:    "Um download já está em andamento",
		KeyBadDestination:    "Não é possível usar a pasta de download",
		KeyParsingPlaylist:   "Lendo playlist...",
		KeyParsingFailed:     "Falha ao ler a playlist",
		KeyChooseVideo:       "Escolha um vídeo",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "A mudança de mecanismo vale após reiniciar.",
	}
}
